package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

func TestStateBlobRoundTrip(t *testing.T) {
	state := stock.SeedState(time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC))
	state.Movements = []stock.Movement{
		{
			ID:          "m1",
			Timestamp:   time.Date(2026, time.February, 10, 12, 30, 0, 0, time.UTC),
			Type:        stock.MovementTypeSaida,
			CoffeeID:    "1",
			CoffeeName:  "JOSANE",
			PR:          "9140",
			Quantity:    600,
			Responsible: "Maria",
		},
	}
	state.CurrentUser = &stock.User{Name: "Maria"}

	blob, err := MarshalState(&state)
	require.NoError(t, err)

	loaded, err := UnmarshalState(blob)
	require.NoError(t, err)
	assert.Equal(t, state, *loaded)
}

func TestStateBlobWireShape(t *testing.T) {
	state := stock.AppState{
		Coffees: []stock.Coffee{
			{ID: "1", Name: "JOSANE", Roasts: []stock.Roast{{ID: "r1", Date: "19/01/26", PR: "9140", Quantity: 1500}}},
		},
		Movements: []stock.Movement{
			{
				ID:        "m1",
				Timestamp: time.Date(2026, time.February, 10, 12, 30, 0, 0, time.UTC),
				Type:      stock.MovementTypeEntrada,
				CoffeeID:  "1",
				PR:        "9140",
				Quantity:  100,
			},
		},
		LastUpdate: time.Date(2026, time.February, 10, 12, 30, 0, 0, time.UTC),
		Theme:      stock.ThemeLight,
	}

	blob, err := MarshalState(&state)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(blob, &wire))

	// Timestamps travel as ISO-8601 strings.
	assert.Equal(t, "2026-02-10T12:30:00Z", wire["lastUpdate"])

	movements, ok := wire["movements"].([]any)
	require.True(t, ok)
	movement := movements[0].(map[string]any)
	assert.Equal(t, "2026-02-10T12:30:00Z", movement["timestamp"])
	assert.Equal(t, "1", movement["coffeeId"])
	assert.Equal(t, "entrada", movement["type"])
}

func TestUnmarshalState_RejectsCorruptBlob(t *testing.T) {
	_, err := UnmarshalState([]byte("{not json"))
	assert.Error(t, err)
}
