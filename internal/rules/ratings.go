// Package rules holds the fixed reference tables of the Amberesque point-buy
// system: the rating scale, the Aspects and Functions, the sixteen Attributes
// they combine into, and the skill rating table.
package rules

// RatingScale lists every rating an Aspect or Function may hold, ascending.
var RatingScale = []int{-20, -15, -10, -5, 0, 5, 10, 15, 20, 25, 30}

// RatingInfo describes one step of the rating scale.
type RatingInfo struct {
	Value int
	Emoji string
	Name  string
}

// Label is the emoji-prefixed name shown on the sheet.
func (r RatingInfo) Label() string {
	return r.Emoji + " " + r.Name
}

// Ratings in scale order.
var Ratings = []RatingInfo{
	{-20, "⛓️‍💥", "Poor Human"},
	{-15, "🚶", "Typical Human"},
	{-10, "🧗", "Talented Human"},
	{-5, "🏆", "Peak Human"},
	{0, "💪", "Amberite Norm"},
	{5, "🐅", "Primeval Beast"},
	{10, "🐉", "Supernatural"},
	{15, "✨", "Mythic"},
	{20, "👑", "Ranked"},
	{25, "🪽", "Paragon"},
	{30, "🔥", "Incarnation"},
}

var ratingIndex = func() map[int]RatingInfo {
	m := make(map[int]RatingInfo, len(Ratings))
	for _, r := range Ratings {
		m[r.Value] = r
	}
	return m
}()

// LookupRating returns the scale entry for v.
func LookupRating(v int) (RatingInfo, bool) {
	info, ok := ratingIndex[v]
	return info, ok
}

// IsValidRating reports whether v is on the rating scale.
func IsValidRating(v int) bool {
	_, ok := ratingIndex[v]
	return ok
}

// RatingLabel returns the descriptive label for a rating, or "" when v is off the scale.
func RatingLabel(v int) string {
	info, ok := ratingIndex[v]
	if !ok {
		return ""
	}
	return info.Label()
}
