package memory_test

import (
	"context"
	"errors"
	"testing"

	"todocore/internal/infra/persistence/memory"
	"todocore/pkg/domain"
)

func TestEmptyStoreListsNothing(t *testing.T) {
	store := memory.NewStore()
	todos, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(todos))
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.TodoInput{Title: "Learn Go", Completed: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected an assigned identifier")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("round trip mismatch: created %+v got %+v", created, got)
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first, err := store.Create(ctx, domain.TodoInput{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := store.Create(ctx, domain.TodoInput{Title: "Walk the dog", Completed: true})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	todos, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("expected two todos, got %d", len(todos))
	}
	if todos[0] != first || todos[1] != second {
		t.Fatalf("unexpected order: %+v", todos)
	}
	if todos[0].Completed || !todos[1].Completed {
		t.Fatalf("completed flags out of order: %+v", todos)
	}
}

func TestGetMissingIDFails(t *testing.T) {
	store := memory.NewStore()
	if _, err := store.Get(context.Background(), 999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateReplacesFieldsAndPreservesIdentity(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	created, err := store.Create(ctx, domain.TodoInput{Title: "Original Title"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other, err := store.Create(ctx, domain.TodoInput{Title: "Untouched"})
	if err != nil {
		t.Fatalf("create other: %v", err)
	}

	updated, err := store.Update(ctx, created.ID, domain.TodoInput{Title: "Updated Title", Completed: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("identifier changed: %d -> %d", created.ID, updated.ID)
	}
	if updated.Title != "Updated Title" || !updated.Completed {
		t.Fatalf("unexpected post-update record: %+v", updated)
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got != updated {
		t.Fatalf("get disagrees with update result: %+v vs %+v", got, updated)
	}

	untouched, err := store.Get(ctx, other.ID)
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if untouched != other {
		t.Fatalf("unrelated todo mutated: %+v", untouched)
	}
}

func TestUpdateMissingIDFails(t *testing.T) {
	store := memory.NewStore()
	if _, err := store.Update(context.Background(), 42, domain.TodoInput{Title: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsTerminal(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	keep, err := store.Create(ctx, domain.TodoInput{Title: "keep"})
	if err != nil {
		t.Fatalf("create keep: %v", err)
	}
	doomed, err := store.Create(ctx, domain.TodoInput{Title: "doomed"})
	if err != nil {
		t.Fatalf("create doomed: %v", err)
	}

	if err := store.Delete(ctx, doomed.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, doomed.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("get after delete: expected ErrNotFound, got %v", err)
	}
	if _, err := store.Update(ctx, doomed.ID, domain.TodoInput{Title: "zombie"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("update after delete: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, doomed.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}

	todos, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != keep.ID {
		t.Fatalf("unexpected survivors: %+v", todos)
	}
}

func TestDeletedIdentifiersAreNotReused(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first, err := store.Create(ctx, domain.TodoInput{Title: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := store.Create(ctx, domain.TodoInput{Title: "second"})
	if err != nil {
		t.Fatalf("create after delete: %v", err)
	}
	if second.ID <= first.ID {
		t.Fatalf("identifier reused or rewound: %d after %d", second.ID, first.ID)
	}
}
