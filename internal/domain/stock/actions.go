// internal/domain/stock/actions.go
package stock

// Action is a state transition request handled by the Reducer. The concrete
// types below are the only implementations.
type Action interface {
	isAction()
}

// MovementInput is the caller-supplied portion of a movement. The reducer
// assigns id and timestamp itself.
type MovementInput struct {
	Type         MovementType
	CoffeeID     string
	CoffeeName   string
	PR           string
	Quantity     int
	Observations string
	Responsible  string
}

// CoffeeInput is the caller-supplied portion of a coffee. The reducer
// assigns the id and starts the batch list empty.
type CoffeeInput struct {
	Name         string
	Observations string
}

// CoffeeUpdate carries a partial coffee edit; nil fields are left untouched.
type CoffeeUpdate struct {
	Name         *string
	Observations *string
}

// AddMovement appends a new ledger entry and applies its stock effect.
type AddMovement struct {
	Movement MovementInput
}

// UpdateMovement replaces an existing ledger entry. The original entry's
// stock effect is reverted before the new one is applied, so edits that
// move the effect to a different coffee or batch stay consistent. The
// entry keeps its id and original timestamp.
type UpdateMovement struct {
	MovementID string
	Movement   MovementInput
}

// DeleteMovement removes a ledger entry and reverts its stock effect.
type DeleteMovement struct {
	MovementID string
}

// AddCoffee adds a coffee to the catalog with no batches.
type AddCoffee struct {
	Coffee CoffeeInput
}

// UpdateCoffee shallow-merges a partial edit into an existing coffee.
type UpdateCoffee struct {
	CoffeeID string
	Updates  CoffeeUpdate
}

// DeleteCoffee removes a coffee and its batches. Movements referencing it
// are left dangling; history keeps reading through the denormalized name.
type DeleteCoffee struct {
	CoffeeID string
}

// RefreshData bumps the last-update timestamp without touching data.
type RefreshData struct{}

// LoadFromStorage fully replaces the state, used once at startup.
type LoadFromStorage struct {
	State AppState
}

// ToggleTheme flips the session theme preference.
type ToggleTheme struct{}

// Login sets the session user.
type Login struct {
	Name string
}

// Logout clears the session user.
type Logout struct{}

func (AddMovement) isAction()     {}
func (UpdateMovement) isAction()  {}
func (DeleteMovement) isAction()  {}
func (AddCoffee) isAction()       {}
func (UpdateCoffee) isAction()    {}
func (DeleteCoffee) isAction()    {}
func (RefreshData) isAction()     {}
func (LoadFromStorage) isAction() {}
func (ToggleTheme) isAction()     {}
func (Login) isAction()           {}
func (Logout) isAction()          {}
