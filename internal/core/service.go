// Package core wires the todo store contract to the serving layer: backend
// selection, the operation-level service facade and its observability hooks.
package core

import (
	"context"
	"time"

	"todocore/pkg/domain"
)

// Service exposes the store operations consumed by the HTTP adapters,
// recording per-operation metrics and trace spans around each call.
type Service struct {
	store   domain.Store
	metrics MetricsRecorder
	tracer  Tracer
}

// Option customizes a Service.
type Option func(*Service)

// WithMetrics attaches a metrics recorder observing every operation.
func WithMetrics(rec MetricsRecorder) Option {
	return func(s *Service) {
		if rec != nil {
			s.metrics = rec
		}
	}
}

// WithTracer attaches a tracer spanning every operation.
func WithTracer(tr Tracer) Option {
	return func(s *Service) {
		if tr != nil {
			s.tracer = tr
		}
	}
}

// NewService constructs a service backed by the supplied store.
func NewService(store domain.Store, opts ...Option) *Service {
	s := &Service{
		store:   store,
		metrics: NopMetricsRecorder{},
		tracer:  NopTracer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying storage implementation.
func (s *Service) Store() domain.Store {
	return s.store
}

// CreateTodo persists a new todo and returns it with its assigned identifier.
func (s *Service) CreateTodo(ctx context.Context, input domain.TodoInput) (domain.Todo, error) {
	var created domain.Todo
	err := s.observe(ctx, "create_todo", func(ctx context.Context) error {
		var err error
		created, err = s.store.Create(ctx, input)
		return err
	})
	return created, err
}

// ListTodos returns all live todos in creation order.
func (s *Service) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := s.observe(ctx, "list_todos", func(ctx context.Context) error {
		var err error
		todos, err = s.store.List(ctx)
		return err
	})
	return todos, err
}

// GetTodo returns the live todo with the given identifier.
func (s *Service) GetTodo(ctx context.Context, id int64) (domain.Todo, error) {
	var todo domain.Todo
	err := s.observe(ctx, "get_todo", func(ctx context.Context) error {
		var err error
		todo, err = s.store.Get(ctx, id)
		return err
	})
	return todo, err
}

// UpdateTodo replaces title and completed on the addressed todo.
func (s *Service) UpdateTodo(ctx context.Context, id int64, input domain.TodoInput) (domain.Todo, error) {
	var updated domain.Todo
	err := s.observe(ctx, "update_todo", func(ctx context.Context) error {
		var err error
		updated, err = s.store.Update(ctx, id, input)
		return err
	})
	return updated, err
}

// DeleteTodo removes the addressed todo permanently.
func (s *Service) DeleteTodo(ctx context.Context, id int64) error {
	return s.observe(ctx, "delete_todo", func(ctx context.Context) error {
		return s.store.Delete(ctx, id)
	})
}

func (s *Service) observe(ctx context.Context, operation string, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, operation)
	start := time.Now()
	err := fn(ctx)
	span.End(err)
	s.metrics.Observe(ctx, operation, err == nil, time.Since(start))
	return err
}
