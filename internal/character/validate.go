package character

import (
	"errors"
	"fmt"

	"github.com/lawnchairsociety/amberesque/internal/powers"
	"github.com/lawnchairsociety/amberesque/internal/rules"
)

// Boundary errors. Validate wraps these so callers can match with errors.Is.
var (
	ErrRatingOffScale   = errors.New("rating is not on the rating scale")
	ErrUnknownSkill     = errors.New("unknown skill")
	ErrDuplicateSkill   = errors.New("skill taken more than once")
	ErrUnknownRating    = errors.New("unknown skill rating")
	ErrUnknownPower     = errors.New("unknown power")
	ErrDuplicatePower   = errors.New("power bought more than once")
	ErrPowerPoints      = errors.New("power points out of range")
	ErrArtifactQuantity = errors.New("artifact quantity must be at least 1")
	ErrLoyalty          = errors.New("loyalty is not an allowed value")
)

// SkillCatalog answers whether a skill id exists.
type SkillCatalog interface {
	HasSkill(id string) bool
}

// PowerCatalog looks up power definitions.
type PowerCatalog interface {
	GetPower(id string) (*powers.Power, bool)
}

// Validate checks raw input before it reaches Compute. Every problem found is
// reported; the result is nil when the input is usable.
func Validate(in Input, skillCatalog SkillCatalog, powerCatalog PowerCatalog) error {
	var errs []error

	for _, a := range rules.Aspects {
		if v := in.Aspects.Get(a.ID); !rules.IsValidRating(v) {
			errs = append(errs, fmt.Errorf("aspect %s = %d: %w", a.ID, v, ErrRatingOffScale))
		}
	}
	for _, f := range rules.Functions {
		if v := in.Functions.Get(f.ID); !rules.IsValidRating(v) {
			errs = append(errs, fmt.Errorf("function %s = %d: %w", f.ID, v, ErrRatingOffScale))
		}
	}

	seenSkills := make(map[string]bool, len(in.Skills))
	for _, e := range in.Skills {
		if !skillCatalog.HasSkill(e.SkillID) {
			errs = append(errs, fmt.Errorf("skill %q: %w", e.SkillID, ErrUnknownSkill))
		}
		if seenSkills[e.SkillID] {
			errs = append(errs, fmt.Errorf("skill %q: %w", e.SkillID, ErrDuplicateSkill))
		}
		seenSkills[e.SkillID] = true
		if _, ok := rules.LookupSkillRating(e.Rating); !ok {
			errs = append(errs, fmt.Errorf("skill %q rating %q: %w", e.SkillID, e.Rating, ErrUnknownRating))
		}
	}

	seenPowers := make(map[string]bool, len(in.Powers))
	for _, pu := range in.Powers {
		def, ok := powerCatalog.GetPower(pu.PowerID)
		if !ok {
			errs = append(errs, fmt.Errorf("power %q: %w", pu.PowerID, ErrUnknownPower))
			continue
		}
		if seenPowers[pu.PowerID] {
			errs = append(errs, fmt.Errorf("power %q: %w", pu.PowerID, ErrDuplicatePower))
		}
		seenPowers[pu.PowerID] = true
		if !def.ValidPoints(pu.Points) {
			errs = append(errs, fmt.Errorf("power %q points %d: %w", pu.PowerID, pu.Points, ErrPowerPoints))
		}
	}

	for _, a := range in.Artifacts {
		if a.Quantity < 1 {
			errs = append(errs, fmt.Errorf("artifact %q quantity %d: %w", a.Name, a.Quantity, ErrArtifactQuantity))
		}
	}

	for _, a := range in.Allies {
		if !a.Loyalty.IsValid() {
			errs = append(errs, fmt.Errorf("ally %q loyalty %d: %w", a.Name, int(a.Loyalty), ErrLoyalty))
		}
	}

	return errors.Join(errs...)
}
