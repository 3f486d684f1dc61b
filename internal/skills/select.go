package skills

import "github.com/lawnchairsociety/amberesque/internal/rules"

// CanSelect reports whether candidate is a legal rating for current given the
// character's other entries and skill limits.
//
// The current rating is always legal so that raising or lowering attributes
// never invalidates a choice already made. Any other rating must be within the
// cap and keep the modifier total within the maximum once it replaces the
// current rating.
func CanSelect(candidate rules.SkillRating, current Entry, entries []Entry, skillCap, skillMax int) bool {
	if candidate == current.Rating {
		return true
	}

	info, ok := rules.LookupSkillRating(candidate)
	if !ok {
		return false
	}
	if info.Modifier > skillCap {
		return false
	}

	projected := TotalModifier(entries) - current.Modifier() + info.Modifier
	return projected <= skillMax
}

// Options returns the ratings a player may pick for current, in table order.
func Options(current Entry, entries []Entry, skillCap, skillMax int) []rules.SkillRating {
	var options []rules.SkillRating
	for _, info := range rules.SkillRatings {
		if CanSelect(info.Rating, current, entries, skillCap, skillMax) {
			options = append(options, info.Rating)
		}
	}
	return options
}
