package stats

import "github.com/lawnchairsociety/amberesque/internal/rules"

// MaxSkillCap is the Extraordinary modifier; no skill goes higher.
const MaxSkillCap = 4

// SkillLimits bounds skill selection.
type SkillLimits struct {
	// Cap is the highest modifier a single skill may take.
	Cap int
	// Maximum is the highest total of all skill modifiers.
	Maximum int

	WillpowerStrength int
	MemoryStrength    int
}

// SkillCap returns min(floor(willpower/4), MaxSkillCap).
func SkillCap(willpowerStrength int) int {
	return min(floorDiv(willpowerStrength, 4), MaxSkillCap)
}

// SkillMaximum returns floor(memory/2).
func SkillMaximum(memoryStrength int) int {
	return floorDiv(memoryStrength, 2)
}

// DeriveSkillLimits reads the Willpower (Resist+Mind) and Memory (Perceive+Mind) pools.
func DeriveSkillLimits(aspects rules.AspectRatings, functions rules.FunctionRatings) SkillLimits {
	willpower := Resolve(AttributeValue(functions.Resist, aspects.Mind)).Strength()
	memory := Resolve(AttributeValue(functions.Perceive, aspects.Mind)).Strength()

	return SkillLimits{
		Cap:               SkillCap(willpower),
		Maximum:           SkillMaximum(memory),
		WillpowerStrength: willpower,
		MemoryStrength:    memory,
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
