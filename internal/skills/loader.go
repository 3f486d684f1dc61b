package skills

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// SkillDefinition represents a skill in the YAML file.
type SkillDefinition struct {
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Order       int    `yaml:"order"`
}

// SkillsConfig represents the structure of the skills.yaml file.
type SkillsConfig struct {
	Skills map[string]SkillDefinition `yaml:"skills"`
}

// Registry holds the skill catalog keyed by id.
type Registry struct {
	skills map[string]*Skill
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{skills: make(map[string]*Skill)}
}

// LoadSkillsFromYAML reads skill definitions from a YAML file.
func LoadSkillsFromYAML(filename string) (*SkillsConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills file: %w", err)
	}

	var config SkillsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse skills YAML: %w", err)
	}

	return &config, nil
}

// CreateSkillFromDefinition builds a Skill from its YAML definition.
func CreateSkillFromDefinition(id string, def SkillDefinition) (*Skill, error) {
	category, err := ParseCategory(def.Category)
	if err != nil {
		return nil, fmt.Errorf("skill %s: %w", id, err)
	}
	name := def.Name
	if name == "" {
		name = id
	}

	return &Skill{
		ID:          id,
		Name:        name,
		Emoji:       def.Emoji,
		Category:    category,
		Description: def.Description,
	}, nil
}

// LoadFromYAML replaces the registry contents with the skills in filename.
func (r *Registry) LoadFromYAML(filename string) error {
	config, err := LoadSkillsFromYAML(filename)
	if err != nil {
		return err
	}
	return r.LoadFromConfig(config)
}

// LoadFromConfig replaces the registry contents with config.
func (r *Registry) LoadFromConfig(config *SkillsConfig) error {
	skills := make(map[string]*Skill, len(config.Skills))
	ids := make([]string, 0, len(config.Skills))
	for id, def := range config.Skills {
		skill, err := CreateSkillFromDefinition(id, def)
		if err != nil {
			return err
		}
		skills[id] = skill
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, b := config.Skills[ids[i]], config.Skills[ids[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return ids[i] < ids[j]
	})

	r.skills = skills
	r.order = ids
	return nil
}

// Add registers a skill, replacing any existing skill with the same id.
func (r *Registry) Add(skill *Skill) {
	if _, exists := r.skills[skill.ID]; !exists {
		r.order = append(r.order, skill.ID)
	}
	r.skills[skill.ID] = skill
}

// GetSkill returns a skill by id.
func (r *Registry) GetSkill(id string) (*Skill, bool) {
	skill, exists := r.skills[id]
	return skill, exists
}

// HasSkill reports whether id is in the catalog.
func (r *Registry) HasSkill(id string) bool {
	_, exists := r.skills[id]
	return exists
}

// All returns every skill in catalog order.
func (r *Registry) All() []*Skill {
	result := make([]*Skill, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.skills[id])
	}
	return result
}

// Available returns the skills not yet taken by entries, in catalog order.
func (r *Registry) Available(entries []Entry) []*Skill {
	taken := make(map[string]bool, len(entries))
	for _, e := range entries {
		taken[e.SkillID] = true
	}

	var result []*Skill
	for _, id := range r.order {
		if !taken[id] {
			result = append(result, r.skills[id])
		}
	}
	return result
}

// Count returns the number of skills in the catalog.
func (r *Registry) Count() int {
	return len(r.skills)
}
