// internal/domain/stock/mutator.go
package stock

import (
	"time"
)

// MutationOutcome tags what a mutator call did to the batch catalog
type MutationOutcome string

const (
	OutcomeBatchMutated MutationOutcome = "batch_mutated" // existing batch quantity changed
	OutcomeBatchCreated MutationOutcome = "batch_created" // entrada created a new batch
	OutcomeNoMatch      MutationOutcome = "no_match"      // no coffee or no batch matched
)

// ApplyMovement applies a movement's effect on the batch quantities of the
// coffee it references. All other coffees pass through unchanged. An entrada
// against a (coffeeId, pr) pair with no existing batch implicitly creates
// one, stamped with today's date and the supplied roast id. A saida against
// a missing batch is a no-op: stock is never fabricated for an exit.
//
// Subtractions clamp at zero. Stock must never display negative, which
// makes apply followed by revert lossy when clamping occurred.
func ApplyMovement(coffees []Coffee, m Movement, ids IDGenerator, now time.Time) ([]Coffee, MutationOutcome) {
	outcome := OutcomeNoMatch

	updated := make([]Coffee, len(coffees))
	for i, coffee := range coffees {
		if coffee.ID != m.CoffeeID {
			updated[i] = coffee
			continue
		}

		roasts := make([]Roast, len(coffee.Roasts))
		copy(roasts, coffee.Roasts)

		if idx := coffee.FindRoast(m.PR); idx >= 0 {
			switch m.Type {
			case MovementTypeEntrada:
				roasts[idx].Quantity += m.Quantity
			case MovementTypeSaida:
				roasts[idx].Quantity = clampZero(roasts[idx].Quantity - m.Quantity)
			}
			outcome = OutcomeBatchMutated
		} else if m.Type == MovementTypeEntrada {
			roasts = append(roasts, Roast{
				ID:           ids.NewID(),
				Date:         now.Format("02/01/2006"),
				PR:           m.PR,
				Quantity:     m.Quantity,
				Observations: m.Observations,
			})
			outcome = OutcomeBatchCreated
		}

		coffee.Roasts = roasts
		updated[i] = coffee
	}

	return updated, outcome
}

// RevertMovement undoes a movement's effect: symmetric subtraction for an
// entrada, symmetric addition for a saida, on the matching batch if present.
// Reverting never removes a batch, even one the movement implicitly created;
// the record persists at whatever quantity the subtraction leaves.
//
// Like ApplyMovement, subtractions clamp at zero, so reverting a clamped
// saida restores more than was actually removed. That asymmetry is the
// documented cost of the clamping policy.
func RevertMovement(coffees []Coffee, m Movement) ([]Coffee, MutationOutcome) {
	outcome := OutcomeNoMatch

	updated := make([]Coffee, len(coffees))
	for i, coffee := range coffees {
		if coffee.ID != m.CoffeeID {
			updated[i] = coffee
			continue
		}

		roasts := make([]Roast, len(coffee.Roasts))
		copy(roasts, coffee.Roasts)

		if idx := coffee.FindRoast(m.PR); idx >= 0 {
			switch m.Type {
			case MovementTypeEntrada:
				roasts[idx].Quantity = clampZero(roasts[idx].Quantity - m.Quantity)
			case MovementTypeSaida:
				roasts[idx].Quantity += m.Quantity
			}
			outcome = OutcomeBatchMutated
		}

		coffee.Roasts = roasts
		updated[i] = coffee
	}

	return updated, outcome
}

func clampZero(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}
