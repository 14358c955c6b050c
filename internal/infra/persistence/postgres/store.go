// Package postgres provides a Postgres-backed todo store that mirrors the
// sqlite table contract while applying its DDL on startup.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"todocore/pkg/domain"
)

// Compile-time contract assertion ensuring the store satisfies the domain interface.
var _ domain.Store = (*Store)(nil)

const (
	defaultDriver = "pgx"
	// Default DSN keeps parity with OpenStore defaults while allowing overrides via env.
	defaultDSN = "postgres://localhost/todocore?sslmode=disable"
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS todos (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL CHECK (char_length(title) >= 1),
		completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_todos_title ON todos (title)`,
}

// Store persists todos in a Postgres table. Operations borrow scoped
// connections from the pool; the BIGSERIAL sequence is never rewound, so
// identifiers of deleted rows are not reused.
type Store struct {
	db *sql.DB
}

// NewStore opens a Postgres-backed store using the provided DSN (falls back
// to defaultDSN), verifies connectivity and applies the schema idempotently.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Create inserts a new row, reading the sequence-assigned identifier back
// through RETURNING.
func (s *Store) Create(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO todos(title, completed) VALUES($1, $2) RETURNING id`,
		input.Title, input.Completed).Scan(&id)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("insert todo: %w", err)
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
		`SELECT id, title, completed FROM todos WHERE id = $1`, id).
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
		`UPDATE todos SET title = $1, completed = $2 WHERE id = $3`,
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
	res, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
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

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
