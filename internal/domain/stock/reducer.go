// internal/domain/stock/reducer.go
package stock

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator assigns ids to movements, coffees and implicitly created
// batches. Implemented by UUIDGenerator (production) and fixed generators
// in tests.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID ids.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Reducer is the ledger state machine. Reduce is a deterministic pure
// transition: same state plus same action yields the same next state,
// with time and id assignment injected through the clock and generator.
// It never errors for well-formed actions and returns the state unchanged
// for malformed references.
type Reducer struct {
	now func() time.Time
	ids IDGenerator
}

// ReducerOption configures a Reducer.
type ReducerOption func(*Reducer)

// WithClock overrides the wall clock, used by tests for determinism.
func WithClock(now func() time.Time) ReducerOption {
	return func(r *Reducer) {
		r.now = now
	}
}

// WithIDGenerator overrides id assignment, used by tests for determinism.
func WithIDGenerator(ids IDGenerator) ReducerOption {
	return func(r *Reducer) {
		r.ids = ids
	}
}

// NewReducer creates a reducer with the wall clock and UUID ids unless
// overridden by options.
func NewReducer(opts ...ReducerOption) *Reducer {
	r := &Reducer{
		now: time.Now,
		ids: UUIDGenerator{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce computes the next state for an action. The current ledger is the
// source of truth for intent; coffee quantities are the derived projection
// the mutator keeps in step, and alerts are recomputed wholesale after
// every stock mutation.
func (r *Reducer) Reduce(state AppState, action Action) AppState {
	switch a := action.(type) {

	case AddMovement:
		now := r.now()
		movement := Movement{
			ID:           r.ids.NewID(),
			Timestamp:    now,
			Type:         a.Movement.Type,
			CoffeeID:     a.Movement.CoffeeID,
			CoffeeName:   a.Movement.CoffeeName,
			PR:           a.Movement.PR,
			Quantity:     a.Movement.Quantity,
			Observations: a.Movement.Observations,
			Responsible:  a.Movement.Responsible,
		}

		coffees, _ := ApplyMovement(state.Coffees, movement, r.ids, now)

		movements := make([]Movement, 0, len(state.Movements)+1)
		movements = append(movements, movement)
		movements = append(movements, state.Movements...)

		state.Coffees = coffees
		state.Movements = movements
		state.Alerts = CalculateAlerts(coffees)
		state.LastUpdate = now
		state.LastUpdatedBy = movement.Responsible
		return state

	case UpdateMovement:
		idx := state.FindMovement(a.MovementID)
		if idx < 0 {
			return state
		}
		now := r.now()
		old := state.Movements[idx]

		// Revert against the original coffeeId/pr/quantity/type before
		// applying the new ones; diffing quantities alone breaks when the
		// edit moves the effect to a different batch.
		coffees, _ := RevertMovement(state.Coffees, old)

		updated := Movement{
			ID:           old.ID,
			Timestamp:    old.Timestamp,
			Type:         a.Movement.Type,
			CoffeeID:     a.Movement.CoffeeID,
			CoffeeName:   a.Movement.CoffeeName,
			PR:           a.Movement.PR,
			Quantity:     a.Movement.Quantity,
			Observations: a.Movement.Observations,
			Responsible:  a.Movement.Responsible,
		}
		coffees, _ = ApplyMovement(coffees, updated, r.ids, now)

		movements := make([]Movement, len(state.Movements))
		copy(movements, state.Movements)
		movements[idx] = updated

		state.Coffees = coffees
		state.Movements = movements
		state.Alerts = CalculateAlerts(coffees)
		state.LastUpdate = now
		state.LastUpdatedBy = updated.Responsible
		return state

	case DeleteMovement:
		idx := state.FindMovement(a.MovementID)
		if idx < 0 {
			return state
		}
		coffees, _ := RevertMovement(state.Coffees, state.Movements[idx])

		movements := make([]Movement, 0, len(state.Movements)-1)
		movements = append(movements, state.Movements[:idx]...)
		movements = append(movements, state.Movements[idx+1:]...)

		state.Coffees = coffees
		state.Movements = movements
		state.Alerts = CalculateAlerts(coffees)
		state.LastUpdate = r.now()
		return state

	case AddCoffee:
		coffee := Coffee{
			ID:           r.ids.NewID(),
			Name:         a.Coffee.Name,
			Roasts:       []Roast{},
			Observations: a.Coffee.Observations,
		}
		coffees := make([]Coffee, 0, len(state.Coffees)+1)
		coffees = append(coffees, state.Coffees...)
		coffees = append(coffees, coffee)

		state.Coffees = coffees
		state.LastUpdate = r.now()
		return state

	case UpdateCoffee:
		idx := state.FindCoffee(a.CoffeeID)
		if idx < 0 {
			return state
		}
		coffees := make([]Coffee, len(state.Coffees))
		copy(coffees, state.Coffees)
		if a.Updates.Name != nil {
			coffees[idx].Name = *a.Updates.Name
		}
		if a.Updates.Observations != nil {
			coffees[idx].Observations = *a.Updates.Observations
		}

		state.Coffees = coffees
		state.Alerts = CalculateAlerts(coffees)
		state.LastUpdate = r.now()
		return state

	case DeleteCoffee:
		idx := state.FindCoffee(a.CoffeeID)
		if idx < 0 {
			return state
		}
		coffees := make([]Coffee, 0, len(state.Coffees)-1)
		coffees = append(coffees, state.Coffees[:idx]...)
		coffees = append(coffees, state.Coffees[idx+1:]...)

		state.Coffees = coffees
		state.Alerts = CalculateAlerts(coffees)
		state.LastUpdate = r.now()
		return state

	case RefreshData:
		state.LastUpdate = r.now()
		return state

	case LoadFromStorage:
		return a.State

	case ToggleTheme:
		if state.Theme == ThemeDark {
			state.Theme = ThemeLight
		} else {
			state.Theme = ThemeDark
		}
		return state

	case Login:
		state.CurrentUser = &User{Name: a.Name}
		return state

	case Logout:
		state.CurrentUser = nil
		return state

	default:
		return state
	}
}
