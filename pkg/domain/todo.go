// Package domain defines the todo entity and the persistence contract shared
// by every backing store implementation.
package domain

// Todo is one todo record. The identifier is assigned by the store on
// creation and never changes afterwards.
type Todo struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoInput carries the caller-owned fields of a todo. Updates replace both
// fields unconditionally; there are no partial/merge semantics.
type TodoInput struct {
	Title     string
	Completed bool
}

// Validate reports whether the input satisfies the boundary contract.
// Titles must have at least one character; whitespace is not trimmed.
func (in TodoInput) Validate() error {
	if len(in.Title) < 1 {
		return ErrInvalidTitle
	}
	return nil
}
