// internal/infrastructure/storage/codec.go
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/your-org/coffee-stock-backend/internal/domain/stock"
)

// SeedFlagValue is the value stored under the seed flag key once the
// built-in catalog has been written.
const SeedFlagValue = "true"

// MarshalState serializes the full application state into the wire blob.
// Timestamps go out as ISO-8601 strings (time.Time's JSON form).
func MarshalState(state *stock.AppState) ([]byte, error) {
	blob, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state blob: %w", err)
	}
	return blob, nil
}

// UnmarshalState materializes a stored blob back into application state.
func UnmarshalState(blob []byte) (*stock.AppState, error) {
	var state stock.AppState
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to deserialize state blob: %w", err)
	}
	return &state, nil
}
