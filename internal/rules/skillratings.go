package rules

// SkillRating is a named step on the skill ladder.
type SkillRating string

const (
	Poor          SkillRating = "Poor"
	Average       SkillRating = "Average"
	Good          SkillRating = "Good"
	Great         SkillRating = "Great"
	Exceptional   SkillRating = "Exceptional"
	Extraordinary SkillRating = "Extraordinary"
)

// SkillRatingInfo is one row of the skill rating table.
type SkillRatingInfo struct {
	Rating   SkillRating
	Modifier int // per-die bonus
	Cost     int // points
}

// SkillRatings is ordered from worst to best.
var SkillRatings = []SkillRatingInfo{
	{Poor, -1, -5},
	{Average, 0, 0},
	{Good, 1, 0},
	{Great, 2, 0},
	{Exceptional, 3, 5},
	{Extraordinary, 4, 10},
}

// LookupSkillRating returns the table row for r.
func LookupSkillRating(r SkillRating) (SkillRatingInfo, bool) {
	for _, info := range SkillRatings {
		if info.Rating == r {
			return info, true
		}
	}
	return SkillRatingInfo{}, false
}
