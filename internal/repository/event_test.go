package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eventease-app/eventease/internal/model"
)

func TestEventCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	first, err := repo.Create(ctx, model.Event{Name: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("first id should be 1, got %d", first.ID)
	}

	second, err := repo.Create(ctx, model.Event{Name: "second"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("second id should be 2, got %d", second.ID)
	}

	// After deleting the highest id, the next create reuses max+1.
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third, err := repo.Create(ctx, model.Event{Name: "third"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if third.ID != 2 {
		t.Fatalf("id after delete should be 2, got %d", third.ID)
	}
}

func TestEventGetByIDRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	for _, id := range []int{0, -1} {
		if _, err := repo.GetByID(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("id %d: expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestEventFilterByCategoryCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	if _, err := repo.Create(ctx, model.Event{Name: "a", Category: "Educational"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, model.Event{Name: "b", Category: "Social"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FilterByCategory(ctx, "eDuCaTiOnAl")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("expected one educational event, got %+v", got)
	}

	none, err := repo.FilterByCategory(ctx, "Sports")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %d", len(none))
	}
}

func TestEventUpdateAbsentIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()

	if err := repo.Update(ctx, model.Event{ID: 42, Name: "ghost"}); err != nil {
		t.Fatalf("update of absent id should not error, got %v", err)
	}
	if err := repo.Delete(ctx, 42); err != nil {
		t.Fatalf("delete of absent id should not error, got %v", err)
	}
}

func TestEventUpdateOverwritesFields(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	created, err := repo.Create(ctx, model.Event{Name: "old", Capacity: 10, Category: "Social"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	next := model.Event{
		ID:       created.ID,
		Name:     "new",
		Date:     time.Date(2026, 12, 1, 9, 0, 0, 0, time.UTC),
		Location: "elsewhere",
		Capacity: 20,
		Category: "Corporate",
	}
	if err := repo.Update(ctx, next); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "new" || got.Capacity != 20 || got.Category != "Corporate" {
		t.Fatalf("fields not overwritten: %+v", got)
	}
}

func TestEventListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository()
	for _, name := range []string{"a", "b", "c"} {
		if _, err := repo.Create(ctx, model.Event{Name: name}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	events, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, name := range []string{"a", "b", "c"} {
		if events[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, events[i].Name)
		}
	}
}
