package stats

import "github.com/lawnchairsociety/amberesque/internal/rules"

// MinSurge is the lowest surge any character can have.
const MinSurge = 1

// StuffPerSurge is how many points of Stuff move Surge by one.
const StuffPerSurge = 5

// FunctionDice counts dice (not pips) across the four attributes of each Function.
func FunctionDice(pools map[rules.Attribute]Pool) map[rules.Function]int {
	counts := make(map[rules.Function]int, len(rules.Functions))
	for _, f := range rules.Functions {
		counts[f.ID] = 0
	}
	for _, info := range rules.Attributes {
		counts[info.Function] += pools[info.ID].Count()
	}
	return counts
}

// BaseSurge is the largest per-Function dice count.
func BaseSurge(pools map[rules.Attribute]Pool) int {
	base := 0
	for _, n := range FunctionDice(pools) {
		base = max(base, n)
	}
	return base
}

// StuffModifier returns floor(stuff/5). Bad Stuff makes it negative.
func StuffModifier(stuff int) int {
	return floorDiv(stuff, StuffPerSurge)
}

// DeriveSurge returns max(MinSurge, base surge + stuff modifier).
func DeriveSurge(pools map[rules.Attribute]Pool, stuff int) int {
	return max(MinSurge, BaseSurge(pools)+StuffModifier(stuff))
}
