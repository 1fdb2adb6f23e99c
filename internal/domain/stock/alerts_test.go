package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffeeWithStock(id, name string, quantities ...int) Coffee {
	roasts := make([]Roast, len(quantities))
	for i, q := range quantities {
		roasts[i] = Roast{ID: id, PR: "pr", Quantity: q}
	}
	return Coffee{ID: id, Name: name, Roasts: roasts}
}

func TestCalculateAlerts_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		alerted  bool
	}{
		{"just below threshold", 499, true},
		{"exactly at threshold", 500, false},
		{"just above threshold", 501, false},
		{"zero stock", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := CalculateAlerts([]Coffee{coffeeWithStock("1", "JOSANE", tt.quantity)})

			if tt.alerted {
				require.Len(t, alerts, 1)
				assert.Equal(t, "1", alerts[0].CoffeeID)
				assert.Equal(t, "JOSANE", alerts[0].CoffeeName)
				assert.Equal(t, tt.quantity, alerts[0].CurrentQuantity)
				assert.Equal(t, LowStockThreshold, alerts[0].Threshold)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestCalculateAlerts_SumsAcrossBatches(t *testing.T) {
	// 300 + 250 = 550, above threshold even though each batch is below it
	alerts := CalculateAlerts([]Coffee{coffeeWithStock("1", "SAMUEL", 300, 250)})
	assert.Empty(t, alerts)

	// 300 + 150 = 450, below threshold
	alerts = CalculateAlerts([]Coffee{coffeeWithStock("1", "SAMUEL", 300, 150)})
	require.Len(t, alerts, 1)
	assert.Equal(t, 450, alerts[0].CurrentQuantity)
}

func TestCalculateAlerts_OrderFollowsCatalog(t *testing.T) {
	coffees := []Coffee{
		coffeeWithStock("1", "A", 100),
		coffeeWithStock("2", "B", 2000),
		coffeeWithStock("3", "C", 0),
		coffeeWithStock("4", "D", 499),
	}

	alerts := CalculateAlerts(coffees)

	require.Len(t, alerts, 3)
	assert.Equal(t, []string{"1", "3", "4"}, []string{alerts[0].CoffeeID, alerts[1].CoffeeID, alerts[2].CoffeeID})
}

func TestCalculateAlerts_Idempotent(t *testing.T) {
	coffees := []Coffee{
		coffeeWithStock("1", "A", 100),
		coffeeWithStock("2", "B", 2000),
	}

	first := CalculateAlerts(coffees)
	second := CalculateAlerts(coffees)

	assert.Equal(t, first, second)
	assert.Equal(t, []Coffee{coffeeWithStock("1", "A", 100), coffeeWithStock("2", "B", 2000)}, coffees,
		"input catalog is never mutated")
}

func TestCalculateAlerts_EmptyCatalog(t *testing.T) {
	assert.Empty(t, CalculateAlerts(nil))
	assert.Empty(t, CalculateAlerts([]Coffee{}))
}
