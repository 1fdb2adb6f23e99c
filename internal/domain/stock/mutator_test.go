package stock

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqIDGenerator issues deterministic ids for tests.
type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

var testTime = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

func testCatalog() []Coffee {
	return []Coffee{
		{
			ID:   "1",
			Name: "JOSANE",
			Roasts: []Roast{
				{ID: "r1", Date: "19/01/26", PR: "9140", Quantity: 1000},
			},
		},
		{
			ID:   "2",
			Name: "SAMUEL",
			Roasts: []Roast{
				{ID: "r2", Date: "19/01/26", PR: "9141", Quantity: 370},
				{ID: "r3", Date: "19/01/26", PR: "9147", Quantity: 1000},
			},
		},
	}
}

func entrada(coffeeID, pr string, quantity int) Movement {
	return Movement{
		ID:        "m1",
		Timestamp: testTime,
		Type:      MovementTypeEntrada,
		CoffeeID:  coffeeID,
		PR:        pr,
		Quantity:  quantity,
	}
}

func saida(coffeeID, pr string, quantity int) Movement {
	m := entrada(coffeeID, pr, quantity)
	m.Type = MovementTypeSaida
	return m
}

func TestApplyMovement_EntradaExistingBatch(t *testing.T) {
	coffees := testCatalog()

	updated, outcome := ApplyMovement(coffees, entrada("1", "9140", 500), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, OutcomeBatchMutated, outcome)
	assert.Equal(t, 1500, updated[0].Roasts[0].Quantity)
	assert.Len(t, updated[0].Roasts, 1, "no new batch for an existing lot code")
}

func TestApplyMovement_EntradaCreatesBatch(t *testing.T) {
	coffees := testCatalog()
	m := entrada("1", "9999", 800)
	m.Observations = "nova torra"

	updated, outcome := ApplyMovement(coffees, m, &seqIDGenerator{prefix: "roast"}, testTime)

	require.Equal(t, OutcomeBatchCreated, outcome)
	require.Len(t, updated[0].Roasts, 2)

	created := updated[0].Roasts[1]
	assert.Equal(t, "roast-1", created.ID)
	assert.Equal(t, "10/02/2026", created.Date)
	assert.Equal(t, "9999", created.PR)
	assert.Equal(t, 800, created.Quantity)
	assert.Equal(t, "nova torra", created.Observations)
}

func TestApplyMovement_SaidaSubtracts(t *testing.T) {
	coffees := testCatalog()

	updated, outcome := ApplyMovement(coffees, saida("1", "9140", 600), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, OutcomeBatchMutated, outcome)
	assert.Equal(t, 400, updated[0].Roasts[0].Quantity)
}

func TestApplyMovement_SaidaClampsAtZero(t *testing.T) {
	coffees := testCatalog()

	updated, outcome := ApplyMovement(coffees, saida("1", "9140", 9999), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, OutcomeBatchMutated, outcome)
	assert.Equal(t, 0, updated[0].Roasts[0].Quantity, "stock never goes negative")
}

func TestApplyMovement_SaidaMissingBatchNoOp(t *testing.T) {
	coffees := testCatalog()

	updated, outcome := ApplyMovement(coffees, saida("1", "0000", 100), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, OutcomeNoMatch, outcome)
	assert.Equal(t, coffees, updated, "an exit cannot fabricate a batch")
}

func TestApplyMovement_OtherCoffeesUntouched(t *testing.T) {
	coffees := testCatalog()

	updated, _ := ApplyMovement(coffees, saida("1", "9140", 100), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, coffees[1], updated[1])
}

func TestApplyMovement_DoesNotMutateInput(t *testing.T) {
	coffees := testCatalog()

	_, _ = ApplyMovement(coffees, saida("1", "9140", 100), &seqIDGenerator{prefix: "id"}, testTime)

	assert.Equal(t, testCatalog(), coffees)
}

func TestRevertMovement_InverseOfApply(t *testing.T) {
	tests := []struct {
		name     string
		movement Movement
	}{
		{"entrada on existing batch", entrada("1", "9140", 500)},
		{"saida fully covered by stock", saida("1", "9140", 1000)},
		{"saida on second batch", saida("2", "9147", 250)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coffees := testCatalog()

			applied, _ := ApplyMovement(coffees, tt.movement, &seqIDGenerator{prefix: "id"}, testTime)
			reverted, _ := RevertMovement(applied, tt.movement)

			assert.Equal(t, coffees, reverted)
		})
	}
}

func TestRevertMovement_ClampedSaidaRestoresTooMuch(t *testing.T) {
	coffees := testCatalog()
	original := coffees[0].Roasts[0].Quantity // 1000
	m := saida("1", "9140", 1400)             // clamps: only 1000 actually leaves

	applied, _ := ApplyMovement(coffees, m, &seqIDGenerator{prefix: "id"}, testTime)
	require.Equal(t, 0, applied[0].Roasts[0].Quantity)

	reverted, _ := RevertMovement(applied, m)

	// Revert adds back the full movement quantity, restoring more than the
	// batch ever held. The surplus equals quantity minus the original stock.
	assert.NotEqual(t, coffees, reverted)
	assert.Equal(t, original+(m.Quantity-original), reverted[0].Roasts[0].Quantity)
	assert.Equal(t, 1400, reverted[0].Roasts[0].Quantity)
}

func TestRevertMovement_EntradaKeepsCreatedBatch(t *testing.T) {
	coffees := testCatalog()
	m := entrada("1", "9999", 800)

	applied, outcome := ApplyMovement(coffees, m, &seqIDGenerator{prefix: "roast"}, testTime)
	require.Equal(t, OutcomeBatchCreated, outcome)

	reverted, _ := RevertMovement(applied, m)

	// The implicitly created batch survives its own revert as a zeroed record.
	require.Len(t, reverted[0].Roasts, 2)
	assert.Equal(t, "9999", reverted[0].Roasts[1].PR)
	assert.Equal(t, 0, reverted[0].Roasts[1].Quantity)
}

func TestRevertMovement_MissingBatchNoOp(t *testing.T) {
	coffees := testCatalog()

	reverted, outcome := RevertMovement(coffees, saida("1", "0000", 100))

	assert.Equal(t, OutcomeNoMatch, outcome)
	assert.Equal(t, coffees, reverted)
}
