// Package sqlite provides a todo store backed by a single SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"todocore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.Store = (*Store)(nil)

// Store persists todos in a SQLite table. Every operation borrows a scoped
// connection from the pool for exactly its own lifetime; no session is held
// across requests. AUTOINCREMENT keeps retired identifiers from being reused
// even after deletion of the highest row.
type Store struct {
	db   *sql.DB
	path string
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL CHECK (length(title) >= 1),
		completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_title ON todos(title)`,
}

// NewStore opens (creating if needed) the database at path and applies the
// schema idempotently. An empty path falls back to ./todocore.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		path = "todocore.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db, path: path}, nil
}

// Create inserts a new row and returns it with the identifier assigned by
// the table's primary-key sequence.
func (s *Store) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO todos(title, completed) VALUES(?, ?)`,
		input.Title, input.Completed)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("insert todo: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Todo{}, fmt.Errorf("read assigned id: %w", err)
	}
	return domain.Todo{ID: id, Title: input.Title, Completed: input.Completed}, nil
}

// List returns all rows in primary-key order.
func (s *Store) List(ctx context.Context) ([]domain.Todo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, completed FROM todos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	todos := make([]domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Completed); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return todos, nil
}

// Get looks up a row by primary key.
func (s *Store) Get(ctx context.Context, id int64) (domain.Todo, error) {
	var todo domain.Todo
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, completed FROM todos WHERE id = ?`, id).
		Scan(&todo.ID, &todo.Title, &todo.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Todo{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Todo{}, fmt.Errorf("select todo %d: %w", id, err)
	}
	return todo, nil
}

// Update overwrites title and completed on the addressed row.
func (s *Store) Update(ctx context.Context, id int64, input domain.TodoInput) (domain.Todo, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE todos SET title = ?, completed = ? WHERE id = ?`,
		input.Title, input.Completed, id)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("update todo %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Todo{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}
	return domain.Todo{ID: id, Title: input.Title, Completed: input.Completed}, nil
}

// Delete removes the addressed row permanently.
func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Path returns the configured database path.
func (s *Store) Path() string { return s.path }
