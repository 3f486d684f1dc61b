// Package character turns a character's raw point allocation into a complete
// derived snapshot, and checks raw input at the boundary before it gets there.
package character

import (
	"github.com/lawnchairsociety/amberesque/internal/pointbuy"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/skills"
)

// DefaultIcon is the avatar icon of a new character.
const DefaultIcon = "ei_light"

// Input is everything a player chooses. It is the only thing ever saved;
// derived values are recomputed from it.
type Input struct {
	Name          string                `json:"name" yaml:"name"`
	Icon          string                `json:"avatarIcon" yaml:"icon"`
	CampaignLimit int                   `json:"campaignLimit" yaml:"campaign_limit"`
	Aspects       rules.AspectRatings   `json:"aspects" yaml:"aspects"`
	Functions     rules.FunctionRatings `json:"functions" yaml:"functions"`
	Skills        []skills.Entry        `json:"skills" yaml:"skills"`
	Powers        []powers.Purchase     `json:"powers" yaml:"powers"`
	Artifacts     []Artifact            `json:"artifacts" yaml:"artifacts"`
	Allies        []Ally                `json:"allies" yaml:"allies"`
	Shadows       []Shadow              `json:"personalShadows" yaml:"personal_shadows"`
}

// NewInput returns a blank character: every rating at the Amberite norm and
// nothing bought.
func NewInput(name string) Input {
	return Input{
		Name:          name,
		Icon:          DefaultIcon,
		CampaignLimit: pointbuy.DefaultCampaignLimit,
		Skills:        []skills.Entry{},
		Powers:        []powers.Purchase{},
		Artifacts:     []Artifact{},
		Allies:        []Ally{},
		Shadows:       []Shadow{},
	}
}

// Clone returns a deep copy of in.
func (in Input) Clone() Input {
	out := in
	out.Skills = cloneSlice(in.Skills)
	out.Powers = cloneSlice(in.Powers)
	out.Artifacts = cloneSlice(in.Artifacts)
	out.Allies = cloneSlice(in.Allies)
	out.Shadows = cloneSlice(in.Shadows)
	return out
}

// Skill returns the entry for skillID.
func (in Input) Skill(skillID string) (skills.Entry, bool) {
	for _, e := range in.Skills {
		if e.SkillID == skillID {
			return e, true
		}
	}
	return skills.Entry{}, false
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return append(make([]T, 0, len(s)), s...)
}
