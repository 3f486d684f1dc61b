// Package pointbuy totals a character's point spend against the campaign limit.
//
// Every contribution is a signed budget delta: negative ratings, Poor skills,
// minor power limitations, enemies and personal shadows all hand points back.
package pointbuy

// DefaultCampaignLimit is the point limit of a new character.
const DefaultCampaignLimit = 100

// Coster is anything that contributes to the point total.
type Coster interface {
	PointCost() int
}

// Sum adds up the point cost of every item.
func Sum[T Coster](items []T) int {
	total := 0
	for _, item := range items {
		total += item.PointCost()
	}
	return total
}

// Breakdown is the point spend split by where it went.
type Breakdown struct {
	Aspects   int `json:"aspects"`
	Functions int `json:"functions"`
	Skills    int `json:"skills"`
	Powers    int `json:"powers"`
	Artifacts int `json:"artifacts"`
	Allies    int `json:"allies"`
	Shadows   int `json:"shadows"`
}

// Ratings is the spend on Aspects and Functions together.
func (b Breakdown) Ratings() int {
	return b.Aspects + b.Functions
}

// Holdings is the spend on artifacts, allies and shadows together.
func (b Breakdown) Holdings() int {
	return b.Artifacts + b.Allies + b.Shadows
}

// Total returns the full point spend.
func (b Breakdown) Total() int {
	return b.Ratings() + b.Skills + b.Powers + b.Holdings()
}

// Stuff returns limit minus spend: positive is Good Stuff, negative Bad Stuff.
func (b Breakdown) Stuff(limit int) int {
	return Stuff(limit, b.Total())
}

// Overspent reports whether the spend exceeds limit. Overspending is allowed;
// it shows up as Bad Stuff.
func (b Breakdown) Overspent(limit int) bool {
	return b.Stuff(limit) < 0
}

// Stuff returns limit minus spent.
func Stuff(limit, spent int) int {
	return limit - spent
}

// StuffKind names the sign of a Stuff value.
func StuffKind(stuff int) string {
	if stuff >= 0 {
		return "Good"
	}
	return "Bad"
}
