package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dejobratic/inventory/internal/inventory/adapters/memory"
	"github.com/dejobratic/inventory/internal/inventory/domain"
	"github.com/dejobratic/inventory/internal/inventory/ports"
	"github.com/shopspring/decimal"
)

func TestProductStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Add assigns sequential ids on the same instance", func(t *testing.T) {
		store := memory.NewProductStore()
		first := &domain.Product{Name: "Crate"}
		second := &domain.Product{Name: "Drum"}

		got, _ := store.Add(ctx, first)
		_, _ = store.Add(ctx, second)

		if got != first {
			t.Error("expected the same instance to be returned")
		}
		if first.ID != 1 || second.ID != 2 {
			t.Errorf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
		}
	})

	t.Run("stored copy is isolated from the caller", func(t *testing.T) {
		store := memory.NewProductStore()
		desc := "wooden"
		product := &domain.Product{Name: "Crate", Description: &desc}
		_, _ = store.Add(ctx, product)

		desc = "mutated"
		product.Name = "Mutated"

		got, err := store.GetByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("GetByID() failed: %v", err)
		}
		if got.Name != "Crate" || *got.Description != "wooden" {
			t.Errorf("expected stored copy to be unchanged, got %+v", got)
		}
	})

	t.Run("optional fields stay absent", func(t *testing.T) {
		store := memory.NewProductStore()
		product, _ := store.Add(ctx, &domain.Product{Name: "Bare"})

		got, err := store.GetByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("GetByID() failed: %v", err)
		}
		if got.Description != nil || got.Weight.Valid || got.Height.Valid || got.Width.Valid || got.Length.Valid {
			t.Errorf("expected absent optionals, got %+v", got)
		}
	})

	t.Run("GetByName returns the first match", func(t *testing.T) {
		store := memory.NewProductStore()
		first, _ := store.Add(ctx, &domain.Product{Name: "Twin", Weight: decimal.NewNullDecimal(decimal.NewFromInt(1))})
		_, _ = store.Add(ctx, &domain.Product{Name: "Twin"})

		got, err := store.GetByName(ctx, "Twin")
		if err != nil {
			t.Fatalf("GetByName() failed: %v", err)
		}
		if got.ID != first.ID {
			t.Errorf("expected ID %d, got %d", first.ID, got.ID)
		}

		if _, err := store.GetByName(ctx, "twin"); !errors.Is(err, ports.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Update of unknown id does not insert", func(t *testing.T) {
		store := memory.NewProductStore()

		if _, err := store.Update(ctx, &domain.Product{ID: 7, Name: "Ghost"}); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}

		all, _ := store.GetAll(ctx)
		if len(all) != 0 {
			t.Errorf("expected no products, got %d", len(all))
		}
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		store := memory.NewProductStore()
		product, _ := store.Add(ctx, &domain.Product{Name: "Crate"})

		if err := store.Delete(ctx, product.ID); err != nil {
			t.Fatalf("Delete() failed: %v", err)
		}
		if err := store.Delete(ctx, product.ID); err != nil {
			t.Errorf("expected second Delete to succeed, got %v", err)
		}
		if _, err := store.GetByID(ctx, product.ID); !errors.Is(err, ports.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("GetAll on empty store returns empty slice", func(t *testing.T) {
		all, err := memory.NewProductStore().GetAll(ctx)
		if err != nil {
			t.Fatalf("GetAll() failed: %v", err)
		}
		if all == nil || len(all) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", all)
		}
	})
}
