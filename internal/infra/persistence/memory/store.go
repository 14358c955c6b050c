// Package memory provides an in-memory implementation of the todo store used
// for tests and ephemeral environments.
package memory

import (
	"context"
	"sync"

	"todocore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.Store = (*Store)(nil)

// Store keeps todos in a slice guarded by a read-write mutex. The identifier
// counter is store-owned so multiple instances can coexist in one process.
type Store struct {
	mu     sync.RWMutex
	todos  []domain.Todo
	nextID int64
}

// NewStore constructs an empty in-memory store. The identifier sequence
// starts at 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Create appends a new todo, assigning the next identifier. The counter is
// never rewound, so identifiers of deleted todos are not reused.
func (s *Store) Create(_ context.Context, input domain.TodoInput) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	todo := domain.Todo{
		ID:        s.nextID,
		Title:     input.Title,
		Completed: input.Completed,
	}
	s.nextID++
	s.todos = append(s.todos, todo)
	return todo, nil
}

// List returns all live todos in creation order.
func (s *Store) List(_ context.Context) ([]domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

// Get returns the live todo with the given identifier.
func (s *Store) Get(_ context.Context, id int64) (domain.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, todo := range s.todos {
		if todo.ID == id {
			return todo, nil
		}
	}
	return domain.Todo{}, domain.ErrNotFound
}

// Update replaces title and completed on the addressed todo in place.
func (s *Store) Update(_ context.Context, id int64, input domain.TodoInput) (domain.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Title = input.Title
			s.todos[i].Completed = input.Completed
			return s.todos[i], nil
		}
	}
	return domain.Todo{}, domain.ErrNotFound
}

// Delete removes the addressed todo. The identifier stays retired.
func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
