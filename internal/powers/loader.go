package powers

import (
	"fmt"
	"os"
	"sort"

	"github.com/lawnchairsociety/amberesque/internal/rules"
	"gopkg.in/yaml.v3"
)

// LevelDefinition represents a cost tier in the YAML file.
type LevelDefinition struct {
	Name string `yaml:"name"`
	Cost int    `yaml:"cost"`
}

// PowerDefinition represents a power in the YAML file.
type PowerDefinition struct {
	Name          string            `yaml:"name"`
	Emoji         string            `yaml:"emoji"`
	Category      string            `yaml:"category"`
	Description   string            `yaml:"description"`
	Requirements  string            `yaml:"requirements"`
	KeyAttributes []string          `yaml:"key_attributes"`
	Levels        []LevelDefinition `yaml:"levels"`
	Order         int               `yaml:"order"`
}

// PowersConfig represents the structure of the powers.yaml file.
type PowersConfig struct {
	Powers map[string]PowerDefinition `yaml:"powers"`
}

// Registry holds the power catalog keyed by id.
type Registry struct {
	powers map[string]*Power
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{powers: make(map[string]*Power)}
}

// LoadPowersFromYAML reads power definitions from a YAML file.
func LoadPowersFromYAML(filename string) (*PowersConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read powers file: %w", err)
	}

	var config PowersConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse powers YAML: %w", err)
	}

	return &config, nil
}

// CreatePowerFromDefinition builds a Power from its YAML definition.
func CreatePowerFromDefinition(id string, def PowerDefinition) (*Power, error) {
	category, err := ParseCategory(def.Category)
	if err != nil {
		return nil, fmt.Errorf("power %s: %w", id, err)
	}

	keys := make([]rules.Attribute, 0, len(def.KeyAttributes))
	for _, name := range def.KeyAttributes {
		attr := rules.Attribute(name)
		if _, ok := rules.LookupAttribute(attr); !ok {
			return nil, fmt.Errorf("power %s: unknown key attribute %q", id, name)
		}
		keys = append(keys, attr)
	}

	levels := make([]Level, len(def.Levels))
	for i, l := range def.Levels {
		if i > 0 && l.Cost <= def.Levels[i-1].Cost {
			return nil, fmt.Errorf("power %s: level %q must cost more than %q", id, l.Name, def.Levels[i-1].Name)
		}
		levels[i] = Level{Name: l.Name, Cost: l.Cost}
	}
	if id == MinorPowerID && len(levels) > 0 {
		return nil, fmt.Errorf("power %s: the minor power has no tiers", id)
	}

	name := def.Name
	if name == "" {
		name = id
	}

	return &Power{
		ID:            id,
		Name:          name,
		Emoji:         def.Emoji,
		Category:      category,
		Description:   def.Description,
		Requirements:  def.Requirements,
		KeyAttributes: keys,
		Levels:        levels,
	}, nil
}

// LoadFromYAML replaces the registry contents with the powers in filename.
func (r *Registry) LoadFromYAML(filename string) error {
	config, err := LoadPowersFromYAML(filename)
	if err != nil {
		return err
	}
	return r.LoadFromConfig(config)
}

// LoadFromConfig replaces the registry contents with config.
func (r *Registry) LoadFromConfig(config *PowersConfig) error {
	powers := make(map[string]*Power, len(config.Powers))
	ids := make([]string, 0, len(config.Powers))
	for id, def := range config.Powers {
		power, err := CreatePowerFromDefinition(id, def)
		if err != nil {
			return err
		}
		powers[id] = power
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, b := config.Powers[ids[i]], config.Powers[ids[j]]
		if a.Order != b.Order {
			return a.Order < b.Order
		}
		return ids[i] < ids[j]
	})

	r.powers = powers
	r.order = ids
	return nil
}

// Add registers a power, replacing any existing power with the same id.
func (r *Registry) Add(power *Power) {
	if _, exists := r.powers[power.ID]; !exists {
		r.order = append(r.order, power.ID)
	}
	r.powers[power.ID] = power
}

// GetPower returns a power by id.
func (r *Registry) GetPower(id string) (*Power, bool) {
	power, exists := r.powers[id]
	return power, exists
}

// All returns every power in catalog order.
func (r *Registry) All() []*Power {
	result := make([]*Power, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.powers[id])
	}
	return result
}

// Count returns the number of powers in the catalog.
func (r *Registry) Count() int {
	return len(r.powers)
}
