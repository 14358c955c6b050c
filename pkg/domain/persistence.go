package domain

import "context"

// Store owns todo identity and lifecycle. Identifiers are assigned on Create,
// strictly increasing, and never reused within a store instance's lifetime,
// deletions included. An entity is visible to List and Get exactly between
// its creation and its deletion.
type Store interface {
	// Create inserts a new todo and returns it with its assigned identifier.
	Create(ctx context.Context, input TodoInput) (Todo, error)
	// List returns all live todos in creation order. An empty store yields
	// an empty slice.
	List(ctx context.Context) ([]Todo, error)
	// Get returns the live todo with the given identifier or ErrNotFound.
	Get(ctx context.Context, id int64) (Todo, error)
	// Update replaces title and completed on the addressed todo and returns
	// the post-update record. The identifier is preserved. ErrNotFound when
	// the identifier does not name a live todo.
	Update(ctx context.Context, id int64, input TodoInput) (Todo, error)
	// Delete removes the addressed todo permanently. Subsequent Get, Update
	// and Delete calls for the identifier fail with ErrNotFound.
	Delete(ctx context.Context, id int64) error
	// Close releases any resources held by the store.
	Close() error
}
