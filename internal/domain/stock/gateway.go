// internal/domain/stock/gateway.go
package stock

// Gateway is the persistence boundary: a key-value blob store with
// synchronous load/save semantics. The core never depends on a save
// completing; failed saves are logged and the next dispatch supersedes
// them. Implemented by the sqlite and redis stores under
// internal/infrastructure/storage.
type Gateway interface {
	// LoadState returns the stored state blob, or (nil, nil) when no blob
	// has been written yet.
	LoadState() (*AppState, error)

	// SaveState replaces the stored state blob with the given state.
	SaveState(state *AppState) error

	// Seeded reports whether the built-in catalog was already written.
	Seeded() (bool, error)

	// MarkSeeded sets the seed flag so the catalog is written only once.
	MarkSeeded() error
}
