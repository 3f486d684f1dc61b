package character

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Artifact is a creature or artifact of power. It costs Cost per unit.
type Artifact struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
	Quantity    int    `json:"quantity" yaml:"quantity"`
}

// NewArtifact returns a free, single artifact.
func NewArtifact() Artifact {
	return Artifact{ID: uuid.NewString(), Name: "New Artifact", Quantity: 1}
}

// PointCost returns Cost × Quantity.
func (a Artifact) PointCost() int {
	return a.Cost * a.Quantity
}

// Loyalty is how an ally or enemy stands toward the character. Its value is
// also its point cost, so enemies give points back.
type Loyalty int

const (
	Nemesis   Loyalty = -6
	Enemy     Loyalty = -3
	Annoyance Loyalty = -1
	Contact   Loyalty = 1
	Friend    Loyalty = 3
	Devotee   Loyalty = 6
)

// Loyalties lists every allowed loyalty, most hostile first.
var Loyalties = []Loyalty{Nemesis, Enemy, Annoyance, Contact, Friend, Devotee}

// IsValid reports whether l is one of Loyalties.
func (l Loyalty) IsValid() bool {
	for _, v := range Loyalties {
		if v == l {
			return true
		}
	}
	return false
}

// IsEnemy reports whether l is hostile.
func (l Loyalty) IsEnemy() bool {
	return l < 0
}

func (l Loyalty) String() string {
	switch l {
	case Nemesis:
		return "Nemesis"
	case Enemy:
		return "Enemy"
	case Annoyance:
		return "Annoyance"
	case Contact:
		return "Contact"
	case Friend:
		return "Ally"
	case Devotee:
		return "Devotee"
	default:
		return fmt.Sprintf("Loyalty(%d)", int(l))
	}
}

// ParseLoyalty parses a loyalty name as shown by String, case-insensitively.
func ParseLoyalty(s string) (Loyalty, error) {
	for _, l := range Loyalties {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("loyalty %q: %w", s, ErrLoyalty)
}

// Ally is an ally, enemy or nemesis.
type Ally struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Loyalty     Loyalty `json:"loyalty" yaml:"loyalty"`
}

// NewAlly returns a new contact.
func NewAlly() Ally {
	return Ally{ID: uuid.NewString(), Name: "New Ally", Loyalty: Contact}
}

// PointCost returns the loyalty score.
func (a Ally) PointCost() int {
	return int(a.Loyalty)
}

// MarshalJSON writes the loyalty a second time as cost, the key the web
// sheet totals. cost is never read back.
func (a Ally) MarshalJSON() ([]byte, error) {
	type plain Ally
	return json.Marshal(struct {
		plain
		Cost int `json:"cost"`
	}{plain(a), a.PointCost()})
}

// Shadow is a personal shadow. Costs are usually negative complications.
type Shadow struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
}

// NewShadow returns a free personal shadow.
func NewShadow() Shadow {
	return Shadow{ID: uuid.NewString(), Name: "New Shadow"}
}

// PointCost returns Cost.
func (s Shadow) PointCost() int {
	return s.Cost
}
