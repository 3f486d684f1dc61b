package powers

import (
	"strings"

	"github.com/google/uuid"
)

// LabelState records where a purchase's label came from.
type LabelState string

const (
	// LabelDefault means no label was chosen; the display label is derived.
	LabelDefault LabelState = "default"
	// LabelTier means the label tracks the highest affordable tier.
	LabelTier LabelState = "tier"
	// LabelCustom means the player typed the label; it is never overwritten.
	LabelCustom LabelState = "custom"
)

// Purchase is a character's purchase of one power.
type Purchase struct {
	ID          string     `json:"id" yaml:"id"`
	PowerID     string     `json:"powerId" yaml:"power_id"`
	Points      int        `json:"points" yaml:"points"`
	Label       string     `json:"label" yaml:"label"`
	LabelState  LabelState `json:"labelState,omitempty" yaml:"label_state,omitempty"`
	Description string     `json:"description" yaml:"description"`
}

// NewPurchase buys p at its default cost.
func NewPurchase(p *Power) Purchase {
	purchase := Purchase{
		ID:      uuid.NewString(),
		PowerID: p.ID,
		Points:  p.DefaultPoints(),
	}
	if len(p.Levels) > 0 && !p.IsMinor() {
		purchase.Label = p.Levels[0].Name
		purchase.LabelState = LabelTier
	} else {
		purchase.Label = p.Name
		purchase.LabelState = LabelDefault
	}
	return purchase
}

// PointCost is the points spent. Minor power limitations are negative.
func (pu Purchase) PointCost() int {
	return pu.Points
}

// WithPoints returns a copy with new points. Tier-tracking and default labels
// follow the highest affordable tier; custom labels and the minor power keep theirs.
func (pu Purchase) WithPoints(p *Power, points int) Purchase {
	pu.Points = points
	if p.IsMinor() || pu.LabelState == LabelCustom {
		return pu
	}
	pu.Label = p.AffordableLabel(points)
	pu.LabelState = LabelTier
	return pu
}

// WithLabel returns a copy with a player-chosen label. An empty label hands
// labelling back to the tiers.
func (pu Purchase) WithLabel(label string) Purchase {
	label = strings.TrimSpace(label)
	if label == "" {
		pu.Label = ""
		pu.LabelState = LabelDefault
		return pu
	}
	pu.Label = label
	pu.LabelState = LabelCustom
	return pu
}

// WithDescription returns a copy describing how the power manifests.
func (pu Purchase) WithDescription(description string) Purchase {
	pu.Description = description
	return pu
}

// DisplayLabel returns the label to show, deriving one when none is set.
func (pu Purchase) DisplayLabel(p *Power) string {
	if pu.Label != "" {
		return pu.Label
	}
	return p.AffordableLabel(pu.Points)
}

// Migrate fills in LabelState for purchases saved before it existed, using
// the old rule: a label naming one of the power's tiers tracks the tiers.
func (pu Purchase) Migrate(p *Power) Purchase {
	if pu.LabelState != "" {
		return pu
	}
	switch {
	case pu.Label == "" || pu.Label == p.Name:
		pu.LabelState = LabelDefault
	case p.IsMinor():
		pu.LabelState = LabelCustom
	case p.HasLevelNamed(pu.Label):
		pu.LabelState = LabelTier
	default:
		pu.LabelState = LabelCustom
	}
	return pu
}

// TotalCost sums the points of every purchase.
func TotalCost(purchases []Purchase) int {
	total := 0
	for _, pu := range purchases {
		total += pu.PointCost()
	}
	return total
}
