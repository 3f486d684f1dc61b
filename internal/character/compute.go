package character

import (
	"github.com/lawnchairsociety/amberesque/internal/pointbuy"
	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
	"github.com/lawnchairsociety/amberesque/internal/skills"
	"github.com/lawnchairsociety/amberesque/internal/stats"
)

// Snapshot is a fully derived character. It holds its own copy of the input.
type Snapshot struct {
	Input

	Attributes   map[rules.Attribute]int        `json:"attributes"`
	Pools        map[rules.Attribute]stats.Pool `json:"pools"`
	FunctionDice map[rules.Function]int         `json:"functionDice"`

	SkillCap          int `json:"skillCap"`
	SkillMaximum      int `json:"skillMaximum"`
	SkillModifiers    int `json:"skillModifiers"` // sum of all selected skill modifiers
	WillpowerStrength int `json:"willpowerStrength"`
	MemoryStrength    int `json:"memoryStrength"`

	Points     pointbuy.Breakdown `json:"points"`
	TotalSpent int                `json:"totalSpent"`
	Stuff      int                `json:"stuff"`
	Surge      int                `json:"surge"`
}

// Compute derives every value on the sheet from in. It does not validate;
// run Validate at the boundary first. in is not modified.
func Compute(in Input) Snapshot {
	in = in.Clone()

	attrs := stats.DeriveAttributes(in.Aspects, in.Functions)
	limits := stats.DeriveSkillLimits(in.Aspects, in.Functions)

	points := pointbuy.Breakdown{
		Aspects:   in.Aspects.Total(),
		Functions: in.Functions.Total(),
		Skills:    skills.TotalCost(in.Skills),
		Powers:    powers.TotalCost(in.Powers),
		Artifacts: pointbuy.Sum(in.Artifacts),
		Allies:    pointbuy.Sum(in.Allies),
		Shadows:   pointbuy.Sum(in.Shadows),
	}
	stuff := points.Stuff(in.CampaignLimit)

	return Snapshot{
		Input:             in,
		Attributes:        attrs.Values,
		Pools:             attrs.Pools,
		FunctionDice:      stats.FunctionDice(attrs.Pools),
		SkillCap:          limits.Cap,
		SkillMaximum:      limits.Maximum,
		SkillModifiers:    skills.TotalModifier(in.Skills),
		WillpowerStrength: limits.WillpowerStrength,
		MemoryStrength:    limits.MemoryStrength,
		Points:            points,
		TotalSpent:        points.Total(),
		Stuff:             stuff,
		Surge:             stats.DeriveSurge(attrs.Pools, stuff),
	}
}

// Overspent reports whether the build has Bad Stuff.
func (s Snapshot) Overspent() bool {
	return s.Stuff < 0
}

// OverSkillMaximum reports whether skill modifiers exceed the maximum, which
// happens when attributes drop after skills were chosen.
func (s Snapshot) OverSkillMaximum() bool {
	return s.SkillModifiers > s.SkillMaximum
}

// SkillOptions returns the ratings the player may pick for skillID. A skill
// not yet taken is treated as a fresh Average entry.
func (s Snapshot) SkillOptions(skillID string) []rules.SkillRating {
	entries := s.Skills
	current, ok := s.Skill(skillID)
	if !ok {
		current = skills.NewEntry(skillID)
		entries = append(cloneSlice(entries), current)
	}
	return skills.Options(current, entries, s.SkillCap, s.SkillMaximum)
}

// CanSelectSkill reports whether rating is a legal choice for skillID.
func (s Snapshot) CanSelectSkill(skillID string, rating rules.SkillRating) bool {
	entries := s.Skills
	current, ok := s.Skill(skillID)
	if !ok {
		current = skills.NewEntry(skillID)
		entries = append(cloneSlice(entries), current)
	}
	return skills.CanSelect(rating, current, entries, s.SkillCap, s.SkillMaximum)
}
