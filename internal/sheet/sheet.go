// Package sheet renders a computed character for people: a terminal sheet
// and a Homebrewery markdown block for pasting into a campaign document.
package sheet

import (
	"fmt"

	"github.com/lawnchairsociety/amberesque/internal/pointbuy"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/skills"
)

// SkillLookup resolves skill ids to definitions.
type SkillLookup interface {
	GetSkill(id string) (*skills.Skill, bool)
}

// PowerLookup resolves power ids to definitions.
type PowerLookup interface {
	GetPower(id string) (*powers.Power, bool)
}

// Catalog bundles the lookups a sheet needs for display names.
type Catalog struct {
	Skills SkillLookup
	Powers PowerLookup
}

func (c Catalog) skillName(id string) string {
	if c.Skills != nil {
		if s, ok := c.Skills.GetSkill(id); ok {
			return s.Name
		}
	}
	return id
}

func (c Catalog) power(id string) (*powers.Power, bool) {
	if c.Powers == nil {
		return nil, false
	}
	return c.Powers.GetPower(id)
}

// stuffText describes leftover points, e.g. "+16 Good Stuff" or "-4 Bad Stuff".
func stuffText(stuff int) string {
	return signed(stuff) + " " + pointbuy.StuffKind(stuff) + " Stuff"
}

func signed(n int) string {
	if n >= 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
