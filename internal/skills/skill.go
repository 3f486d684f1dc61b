package skills

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/amberesque/internal/rules"
)

// Category groups skills on the sheet.
type Category string

const (
	Social   Category = "Social"
	Physical Category = "Physical"
	Abstract Category = "Abstract"
)

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "social":
		return Social, nil
	case "physical":
		return Physical, nil
	case "abstract":
		return Abstract, nil
	default:
		return "", fmt.Errorf("unknown skill category: %s", s)
	}
}

// Skill is a catalog definition.
type Skill struct {
	ID          string
	Name        string
	Emoji       string
	Category    Category
	Description string
}

// Entry is a character's purchase of one skill.
type Entry struct {
	SkillID   string            `json:"skillId" yaml:"skill_id"`
	Rating    rules.SkillRating `json:"rating" yaml:"rating"`
	Specialty string            `json:"specialty" yaml:"specialty"`
}

// NewEntry starts a skill at Average with no specialty.
func NewEntry(skillID string) Entry {
	return Entry{SkillID: skillID, Rating: rules.Average}
}

// Modifier returns the rating's per-die modifier, 0 for unknown ratings.
func (e Entry) Modifier() int {
	info, _ := rules.LookupSkillRating(e.Rating)
	return info.Modifier
}

// PointCost returns the rating's point cost, 0 for unknown ratings.
func (e Entry) PointCost() int {
	info, _ := rules.LookupSkillRating(e.Rating)
	return info.Cost
}

// TotalCost sums the point cost of every entry.
func TotalCost(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.PointCost()
	}
	return total
}

// TotalModifier sums the modifier of every entry.
func TotalModifier(entries []Entry) int {
	total := 0
	for _, e := range entries {
		total += e.Modifier()
	}
	return total
}
