package services

import (
	"context"
	"testing"

	"github.com/wizreet/cocobakes/models"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	catalog := DefaultCatalog()

	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")

	id, err := store.Create(ctx, sel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.BaseID != "classic" {
		t.Fatalf("expected stored base, got %q", loaded.BaseID)
	}
}

func TestMemorySessionStoreUnknownID(t *testing.T) {
	store := NewMemorySessionStore()

	if _, err := store.Get(context.Background(), "nope"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestMemorySessionStoreDelete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	catalog := DefaultCatalog()

	id, err := store.Create(ctx, models.NewSelectionState(catalog.Quantity))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Get(ctx, id); err != ErrSessionNotFound {
		t.Fatalf("expected session gone, got %v", err)
	}
}

func TestMemorySessionStoreIsolatesState(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()
	catalog := DefaultCatalog()

	sel := models.NewSelectionState(catalog.Quantity)
	sel.ToggleOption(models.GroupToppings, "walnuts", 3)
	id, _ := store.Create(ctx, sel)

	// mutating the loaded copy must not leak into the store until Save
	loaded, _ := store.Get(ctx, id)
	loaded.ToggleOption(models.GroupToppings, "walnuts", 3)

	again, _ := store.Get(ctx, id)
	if len(again.ToppingIDs) != 1 {
		t.Fatalf("unsaved mutation leaked into the store: %v", again.ToppingIDs)
	}
}
