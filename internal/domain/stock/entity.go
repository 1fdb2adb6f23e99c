// internal/domain/stock/entity.go
package stock

import (
	"time"
)

// MovementType represents the direction of a stock movement
type MovementType string

const (
	MovementTypeEntrada MovementType = "entrada" // Stock entry (roast produced, stock received)
	MovementTypeSaida   MovementType = "saida"   // Stock exit (sale, transfer, loss)
)

// Theme represents the UI theme preference kept alongside session state
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// LowStockThreshold is the fixed alert threshold in grams. A coffee whose
// roasts sum to strictly less than this emits a StockAlert.
const LowStockThreshold = 500

// Coffee represents a named product/origin tracked independently of any
// single batch. It exclusively owns its roasts.
type Coffee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Roasts       []Roast `json:"roasts"`
	Observations string  `json:"observations,omitempty"`
}

// Roast represents one production batch of a coffee, identified by its
// lot code (PR) and holding a quantity in grams.
type Roast struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // display string, not a sort key
	PR           string `json:"pr"`
	Quantity     int    `json:"quantity"` // grams, never persisted negative
	Observations string `json:"observations,omitempty"`
}

// Movement represents a single ledger entry recording grams moved in or
// out of a specific coffee+lot. CoffeeName and Responsible are denormalized
// snapshots so history still reads correctly after the coffee or user is
// gone.
type Movement struct {
	ID           string       `json:"id"`
	Timestamp    time.Time    `json:"timestamp"` // fixed at creation, edits keep it
	Type         MovementType `json:"type"`
	CoffeeID     string       `json:"coffeeId"`
	CoffeeName   string       `json:"coffeeName"`
	PR           string       `json:"pr"`
	Quantity     int          `json:"quantity"` // grams, always positive
	Observations string       `json:"observations,omitempty"`
	Responsible  string       `json:"responsible"`
}

// StockAlert is a derived low-stock signal. Alerts are recomputed wholesale
// after every mutation and never stored or edited independently.
type StockAlert struct {
	CoffeeID        string `json:"coffeeId"`
	CoffeeName      string `json:"coffeeName"`
	CurrentQuantity int    `json:"currentQuantity"`
	Threshold       int    `json:"threshold"`
}

// User represents the session user. Name capture only, no credentials.
type User struct {
	Name string `json:"name"`
}

// AppState is the aggregate root. It exclusively owns all coffees and
// movements; movements hold a non-owning reference (by id) to their coffee.
// The movement list is kept newest-first.
type AppState struct {
	Coffees       []Coffee     `json:"coffees"`
	Movements     []Movement   `json:"movements"`
	Alerts        []StockAlert `json:"alerts"`
	LastUpdate    time.Time    `json:"lastUpdate"`
	LastUpdatedBy string       `json:"lastUpdatedBy,omitempty"`
	CurrentUser   *User        `json:"currentUser"`
	Theme         Theme        `json:"theme"`
}

// Entity methods

// TotalQuantity sums the coffee's roast quantities in grams.
func (c *Coffee) TotalQuantity() int {
	total := 0
	for _, roast := range c.Roasts {
		total += roast.Quantity
	}
	return total
}

// IsLowStock checks if the coffee's total stock is below the alert threshold.
func (c *Coffee) IsLowStock() bool {
	return c.TotalQuantity() < LowStockThreshold
}

// FindRoast returns the index of the roast matching the given lot code,
// or -1 if the coffee has no such batch.
func (c *Coffee) FindRoast(pr string) int {
	for i := range c.Roasts {
		if c.Roasts[i].PR == pr {
			return i
		}
	}
	return -1
}

// FindCoffee returns the index of the coffee with the given id, or -1.
func (s *AppState) FindCoffee(id string) int {
	for i := range s.Coffees {
		if s.Coffees[i].ID == id {
			return i
		}
	}
	return -1
}

// FindMovement returns the index of the movement with the given id, or -1.
func (s *AppState) FindMovement(id string) int {
	for i := range s.Movements {
		if s.Movements[i].ID == id {
			return i
		}
	}
	return -1
}
