package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/shopspring/decimal"
)

func newTestProduct(t *testing.T, id uuid.UUID, name, price string) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(id, name, decimal.RequireFromString(price))
	if err != nil {
		t.Fatalf("setup: new product failed: %v", err)
	}
	return product
}

func TestProductRepository_AddAndGetByID(t *testing.T) {
	repo := repository.NewProductRepository(freshDB(t))
	ctx := context.Background()

	t.Run("returns the stored product", func(t *testing.T) {
		product := newTestProduct(t, uuid.New(), "Widget", "9.99")
		if err := repo.Add(ctx, product); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, err := repo.GetByID(ctx, product.ID())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !found.Equal(product) {
			t.Fatalf("expected %v, got %v", product, found)
		}
	})

	t.Run("returns nil for unknown id", func(t *testing.T) {
		found, err := repo.GetByID(ctx, uuid.New())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found != nil {
			t.Fatalf("expected nil, got %v", found)
		}
	})

	t.Run("duplicate ids resolve to the first insert", func(t *testing.T) {
		id := uuid.New()
		first := newTestProduct(t, id, "First", "1")
		second := newTestProduct(t, id, "Second", "2")
		_ = repo.Add(ctx, first)
		_ = repo.Add(ctx, second)

		found, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !found.Equal(first) {
			t.Fatalf("expected first insert, got %v", found)
		}
	})
}

func TestProductRepository_GetAll(t *testing.T) {
	repo := repository.NewProductRepository(freshDB(t))
	ctx := context.Background()

	t.Run("returns empty list when no products", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("returns products in insertion order", func(t *testing.T) {
		added := []*domain.Product{
			newTestProduct(t, uuid.New(), "Product 1", "10"),
			newTestProduct(t, uuid.New(), "Product 2", "20.5"),
			newTestProduct(t, uuid.New(), "Product 3", "0"),
		}
		for _, p := range added {
			if err := repo.Add(ctx, p); err != nil {
				t.Fatalf("setup: add failed: %v", err)
			}
		}

		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != len(added) {
			t.Fatalf("expected %d products, got %d", len(added), len(products))
		}
		for i := range added {
			if !products[i].Equal(added[i]) {
				t.Fatalf("position %d: expected %v, got %v", i, added[i], products[i])
			}
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	repo := repository.NewProductRepository(freshDB(t))
	ctx := context.Background()

	t.Run("replaces in place", func(t *testing.T) {
		a := newTestProduct(t, uuid.New(), "A", "1")
		b := newTestProduct(t, uuid.New(), "B", "2")
		_ = repo.Add(ctx, a)
		_ = repo.Add(ctx, b)

		renamed := newTestProduct(t, a.ID(), "A2", "3")
		if err := repo.Update(ctx, renamed); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		products, _ := repo.GetAll(ctx)
		if len(products) != 2 || !products[0].Equal(renamed) || !products[1].Equal(b) {
			t.Fatalf("unexpected contents %v", products)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before, _ := repo.GetAll(ctx)
		if err := repo.Update(ctx, newTestProduct(t, uuid.New(), "Ghost", "1")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		after, _ := repo.GetAll(ctx)
		if len(after) != len(before) {
			t.Fatalf("expected %d products, got %d", len(before), len(after))
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	repo := repository.NewProductRepository(freshDB(t))
	ctx := context.Background()

	t.Run("removes the product", func(t *testing.T) {
		product := newTestProduct(t, uuid.New(), "Widget", "5")
		_ = repo.Add(ctx, product)

		if err := repo.Delete(ctx, product.ID()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		found, err := repo.GetByID(ctx, product.ID())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if found != nil {
			t.Fatalf("expected product to be gone, got %v", found)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		if err := repo.Delete(ctx, uuid.New()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}
