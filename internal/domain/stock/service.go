// internal/domain/stock/service.go
package stock

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/coffee-stock-backend/internal/config"
)

// Boundary errors. Validation happens here, before dispatch; the reducer
// itself never rejects an action.
var (
	ErrCoffeeNotFound    = errors.New("coffee not found")
	ErrMovementNotFound  = errors.New("movement not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotLoggedIn       = errors.New("no user logged in")
)

// Service owns the application state and serializes every dispatch.
// Transitions run to completion under the lock, so there is exactly one
// writer and the reducer's purity keeps replays deterministic. Each
// dispatch persists the full state blob through the gateway; a failed
// save is logged and tolerated.
type Service struct {
	mu      sync.Mutex
	state   AppState
	reducer *Reducer
	gateway Gateway
	config  *config.Config
	log     *logrus.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithReducer overrides the reducer, used by tests to fix time and ids.
func WithReducer(r *Reducer) ServiceOption {
	return func(s *Service) {
		s.reducer = r
	}
}

// NewService creates a new stock service
func NewService(cfg *config.Config, gateway Gateway, log *logrus.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		reducer: NewReducer(),
		gateway: gateway,
		config:  cfg,
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MovementRequest represents movement creation/edit data
type MovementRequest struct {
	Type         MovementType `json:"type" binding:"required,oneof=entrada saida"`
	CoffeeID     string       `json:"coffeeId" binding:"required"`
	PR           string       `json:"pr" binding:"required"`
	Quantity     int          `json:"quantity" binding:"required,min=1"`
	Observations string       `json:"observations"`
	Responsible  string       `json:"responsible" binding:"required"`
}

// CoffeeRequest represents coffee creation data
type CoffeeRequest struct {
	Name         string `json:"name" binding:"required"`
	Observations string `json:"observations"`
}

// CoffeeUpdateRequest represents a partial coffee edit
type CoffeeUpdateRequest struct {
	Name         *string `json:"name"`
	Observations *string `json:"observations"`
}

// BOOTSTRAP

// Bootstrap prepares the in-memory state at startup: on first run it
// writes the built-in seed catalog and sets the seed flag; afterwards it
// loads the stored blob and replaces state through LoadFromStorage. An
// unreadable blob falls back to the seed catalog instead of failing.
func (s *Service) Bootstrap() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded, err := s.gateway.Seeded()
	if err != nil {
		return fmt.Errorf("failed to read seed flag: %w", err)
	}

	if !seeded {
		s.state = SeedState(time.Now())
		if err := s.gateway.SaveState(&s.state); err != nil {
			return fmt.Errorf("failed to write seed state: %w", err)
		}
		if err := s.gateway.MarkSeeded(); err != nil {
			return fmt.Errorf("failed to set seed flag: %w", err)
		}
		s.log.WithField("coffees", len(s.state.Coffees)).Info("Seeded initial coffee catalog")
		return nil
	}

	loaded, err := s.gateway.LoadState()
	if err != nil || loaded == nil {
		s.log.WithError(err).Warn("Stored state unreadable, falling back to seed catalog")
		s.state = SeedState(time.Now())
		return nil
	}

	s.state = s.reducer.Reduce(s.state, LoadFromStorage{State: *loaded})
	s.log.WithFields(logrus.Fields{
		"coffees":   len(s.state.Coffees),
		"movements": len(s.state.Movements),
	}).Info("Loaded state from storage")
	return nil
}

// MOVEMENTS

// AddMovement validates and records a new ledger entry. For a saida the
// requested quantity must not exceed the coffee's current total stock; the
// reducer would clamp rather than reject, so the check lives here at the
// boundary.
func (s *Service) AddMovement(req *MovementRequest) (*Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coffee, err := s.coffeeByID(req.CoffeeID)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1 gram")
	}
	if req.Type == MovementTypeSaida {
		available := coffee.TotalQuantity()
		if req.Quantity > available {
			return nil, fmt.Errorf("%w: available %dg, requested %dg", ErrInsufficientStock, available, req.Quantity)
		}
	}

	s.dispatch(AddMovement{Movement: s.movementInput(req, coffee.Name)})

	created := s.state.Movements[0]
	s.logMovement("Movement recorded", &created)
	return &created, nil
}

// UpdateMovement validates and replaces an existing ledger entry. Stock
// availability is checked with the original movement's quantity added back
// when the edit keeps a saida on the same coffee, since its old effect is
// reverted before the new one applies.
func (s *Service) UpdateMovement(id string, req *MovementRequest) (*Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindMovement(id)
	if idx < 0 {
		return nil, ErrMovementNotFound
	}
	old := s.state.Movements[idx]

	coffee, err := s.coffeeByID(req.CoffeeID)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1 gram")
	}
	if req.Type == MovementTypeSaida {
		available := coffee.TotalQuantity()
		if old.Type == MovementTypeSaida && old.CoffeeID == req.CoffeeID {
			available += old.Quantity
		}
		if req.Quantity > available {
			return nil, fmt.Errorf("%w: available %dg, requested %dg", ErrInsufficientStock, available, req.Quantity)
		}
	}

	s.dispatch(UpdateMovement{MovementID: id, Movement: s.movementInput(req, coffee.Name)})

	updated := s.state.Movements[idx]
	s.logMovement("Movement updated", &updated)
	return &updated, nil
}

// DeleteMovement removes a ledger entry and reverts its stock effect.
func (s *Service) DeleteMovement(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindMovement(id)
	if idx < 0 {
		return ErrMovementNotFound
	}
	deleted := s.state.Movements[idx]

	s.dispatch(DeleteMovement{MovementID: id})
	s.logMovement("Movement deleted", &deleted)
	return nil
}

// Movements returns the ledger, newest first.
func (s *Service) Movements() []Movement {
	s.mu.Lock()
	defer s.mu.Unlock()

	movements := make([]Movement, len(s.state.Movements))
	copy(movements, s.state.Movements)
	return movements
}

// COFFEES

// AddCoffee adds a coffee to the catalog with an empty batch list.
func (s *Service) AddCoffee(req *CoffeeRequest) (*Coffee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(AddCoffee{Coffee: CoffeeInput{
		Name:         req.Name,
		Observations: req.Observations,
	}})

	created := s.state.Coffees[len(s.state.Coffees)-1]
	s.log.WithFields(logrus.Fields{
		"coffee_id": created.ID,
		"name":      created.Name,
	}).Info("Coffee added")
	return &created, nil
}

// UpdateCoffee shallow-merges a partial edit into an existing coffee.
func (s *Service) UpdateCoffee(id string, req *CoffeeUpdateRequest) (*Coffee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindCoffee(id)
	if idx < 0 {
		return nil, ErrCoffeeNotFound
	}

	s.dispatch(UpdateCoffee{CoffeeID: id, Updates: CoffeeUpdate{
		Name:         req.Name,
		Observations: req.Observations,
	}})

	updated := s.state.Coffees[idx]
	return &updated, nil
}

// DeleteCoffee removes a coffee and its batches. Ledger entries referencing
// it stay in the history with their denormalized snapshots.
func (s *Service) DeleteCoffee(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.FindCoffee(id)
	if idx < 0 {
		return ErrCoffeeNotFound
	}
	name := s.state.Coffees[idx].Name

	s.dispatch(DeleteCoffee{CoffeeID: id})
	s.log.WithFields(logrus.Fields{
		"coffee_id": id,
		"name":      name,
	}).Info("Coffee deleted")
	return nil
}

// Coffees returns the catalog in insertion order.
func (s *Service) Coffees() []Coffee {
	s.mu.Lock()
	defer s.mu.Unlock()

	coffees := make([]Coffee, len(s.state.Coffees))
	copy(coffees, s.state.Coffees)
	return coffees
}

// AvailableStock returns a coffee's current total stock in grams, the
// figure the boundary checks before dispatching a saida.
func (s *Service) AvailableStock(coffeeID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coffee, err := s.coffeeByID(coffeeID)
	if err != nil {
		return 0, err
	}
	return coffee.TotalQuantity(), nil
}

// SESSION & PRESENTATION

// Alerts returns the current low-stock alerts.
func (s *Service) Alerts() []StockAlert {
	s.mu.Lock()
	defer s.mu.Unlock()

	alerts := make([]StockAlert, len(s.state.Alerts))
	copy(alerts, s.state.Alerts)
	return alerts
}

// State returns a snapshot of the full application state.
func (s *Service) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login sets the session user by name.
func (s *Service) Login(name string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	s.dispatch(Login{Name: name})
	return s.state.CurrentUser, nil
}

// Logout clears the session user.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(Logout{})
}

// CurrentUser returns the session user, or ErrNotLoggedIn.
func (s *Service) CurrentUser() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentUser == nil {
		return nil, ErrNotLoggedIn
	}
	user := *s.state.CurrentUser
	return &user, nil
}

// ToggleTheme flips the theme preference and returns the new value.
func (s *Service) ToggleTheme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dispatch(ToggleTheme{})
	return s.state.Theme
}

// Refresh bumps the last-update timestamp.
func (s *Service) Refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dispatch(RefreshData{})
}

// internals

// dispatch runs one reducer transition and persists the result. Callers
// must hold s.mu. Save failures never fail the transition; the next
// dispatch writes a fresh blob anyway.
func (s *Service) dispatch(action Action) {
	s.state = s.reducer.Reduce(s.state, action)
	if err := s.gateway.SaveState(&s.state); err != nil {
		s.log.WithError(err).Error("Failed to persist state blob")
	}
}

func (s *Service) coffeeByID(id string) (*Coffee, error) {
	idx := s.state.FindCoffee(id)
	if idx < 0 {
		return nil, ErrCoffeeNotFound
	}
	return &s.state.Coffees[idx], nil
}

func (s *Service) movementInput(req *MovementRequest, coffeeName string) MovementInput {
	return MovementInput{
		Type:         req.Type,
		CoffeeID:     req.CoffeeID,
		CoffeeName:   coffeeName,
		PR:           req.PR,
		Quantity:     req.Quantity,
		Observations: req.Observations,
		Responsible:  req.Responsible,
	}
}

func (s *Service) logMovement(msg string, m *Movement) {
	s.log.WithFields(logrus.Fields{
		"movement_id": m.ID,
		"type":        m.Type,
		"coffee":      m.CoffeeName,
		"pr":          m.PR,
		"quantity":    m.Quantity,
		"responsible": m.Responsible,
	}).Info(msg)
}
