// Package powers holds the power catalog and a character's power purchases.
package powers

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/amberesque/internal/rules"
)

// MinorPowerID is the catalog id of the freeform minor power.
// It is costed on its own -5..+5 scale instead of tiers.
const MinorPowerID = "MinorPower"

// Minor power point bounds.
const (
	MinorPowerMin = -5
	MinorPowerMax = 5
)

// Category is the kind of power.
type Category string

const (
	Substance     Category = "Substance"
	SemiSubstance Category = "Semi-Substance"
	Shadow        Category = "Shadow"
)

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "substance":
		return Substance, nil
	case "semi-substance", "semi_substance", "semisubstance":
		return SemiSubstance, nil
	case "shadow":
		return Shadow, nil
	default:
		return "", fmt.Errorf("unknown power category: %s", s)
	}
}

// Level is a named cost tier.
type Level struct {
	Name string
	Cost int
}

// Power is a catalog definition.
type Power struct {
	ID            string
	Name          string
	Emoji         string
	Category      Category
	Description   string
	Requirements  string
	KeyAttributes []rules.Attribute
	Levels        []Level // ascending cost
}

// IsMinor reports whether p is the minor power.
func (p *Power) IsMinor() bool {
	return p.ID == MinorPowerID
}

// DefaultPoints is what a fresh purchase costs: the first tier, or 0.
func (p *Power) DefaultPoints() int {
	if len(p.Levels) > 0 {
		return p.Levels[0].Cost
	}
	return 0
}

// AffordableLabel returns the name of the highest tier points can buy,
// falling back to the first tier and then the power's own name.
func (p *Power) AffordableLabel(points int) string {
	if p.IsMinor() {
		return minorTier(points)
	}
	for i := len(p.Levels) - 1; i >= 0; i-- {
		if points >= p.Levels[i].Cost {
			return p.Levels[i].Name
		}
	}
	if len(p.Levels) > 0 {
		return p.Levels[0].Name
	}
	return p.Name
}

// HasLevelNamed reports whether name is one of the power's tier names.
func (p *Power) HasLevelNamed(name string) bool {
	for _, l := range p.Levels {
		if l.Name == name {
			return true
		}
	}
	return false
}

// ValidPoints reports whether points is allowed for this power.
func (p *Power) ValidPoints(points int) bool {
	if p.IsMinor() {
		return points >= MinorPowerMin && points <= MinorPowerMax
	}
	return points >= 0
}

// Tier classifies a point spend for display.
func Tier(p *Power, points int) string {
	if p.IsMinor() {
		return minorTier(points)
	}

	switch {
	case len(p.Levels) == 0:
		return "Custom"
	case len(p.Levels) >= 3 && points >= p.Levels[2].Cost:
		return "Exalted"
	case len(p.Levels) >= 2 && points >= p.Levels[1].Cost:
		return "Advanced"
	case points >= p.Levels[0].Cost:
		return "Standard"
	default:
		return "Below Standard"
	}
}

func minorTier(points int) string {
	switch {
	case points < 0:
		return "Limitation"
	case points == 0:
		return "Trivial"
	default:
		return "Minor"
	}
}
