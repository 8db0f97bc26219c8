package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

func newProduct(t interface{ Fatalf(string, ...any) }, id uuid.UUID, name string, cents int64) *domain.Product {
	product, err := domain.NewProduct(id, name, decimal.New(cents, -2))
	if err != nil {
		t.Fatalf("setup: new product failed: %v", err)
	}
	return product
}

func TestProductRepository_AddAndGetByID(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	product := newProduct(t, uuid.New(), "Widget", 999)

	if err := repo.Add(ctx, product); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, err := repo.GetByID(ctx, product.ID())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !found.Equal(product) {
		t.Fatalf("expected %+v, got %+v", product, found)
	}
}

func TestProductRepository_GetByID_Absent(t *testing.T) {
	repo := NewProductRepository()

	found, err := repo.GetByID(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if found != nil {
		t.Fatalf("expected nil, got %+v", found)
	}
}

func TestProductRepository_GetAll(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		products, err := repo.GetAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected 0 products, got %d", len(products))
		}
	})

	t.Run("keeps duplicates", func(t *testing.T) {
		id := uuid.New()
		_ = repo.Add(ctx, newProduct(t, id, "First", 100))
		_ = repo.Add(ctx, newProduct(t, id, "Second", 200))

		products, _ := repo.GetAll(ctx)
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}

		found, _ := repo.GetByID(ctx, id)
		if found.Name() != "First" {
			t.Fatalf("expected first inserted product, got %q", found.Name())
		}
	})
}

func TestProductRepository_Update(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	id := uuid.New()
	_ = repo.Add(ctx, newProduct(t, id, "Widget", 999))
	_ = repo.Add(ctx, newProduct(t, uuid.New(), "Other", 100))

	t.Run("replaces stored product", func(t *testing.T) {
		replacement := newProduct(t, id, "Widget v2", 1299)
		if err := repo.Update(ctx, replacement); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		found, _ := repo.GetByID(ctx, id)
		if !found.Equal(replacement) {
			t.Fatalf("expected replacement, got %+v", found)
		}

		all, _ := repo.GetAll(ctx)
		if all[0].ID() != id {
			t.Fatal("expected replaced product to keep its position")
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		if err := repo.Update(ctx, newProduct(t, uuid.New(), "Ghost", 1)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		all, _ := repo.GetAll(ctx)
		if len(all) != 2 {
			t.Fatalf("expected 2 products, got %d", len(all))
		}
	})
}

func TestProductRepository_Delete(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()
	product := newProduct(t, uuid.New(), "Widget", 999)
	_ = repo.Add(ctx, product)

	if err := repo.Delete(ctx, product.ID()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	found, _ := repo.GetByID(ctx, product.ID())
	if found != nil {
		t.Fatalf("expected product to be gone, got %+v", found)
	}

	if err := repo.Delete(ctx, product.ID()); err != nil {
		t.Fatalf("expected deleting a missing product to succeed, got %v", err)
	}
}

func drawProduct(t *rapid.T, label string) *domain.Product {
	raw := rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, label+".id")
	id, _ := uuid.FromBytes(raw)
	name := rapid.StringMatching(`[A-Za-z][A-Za-z0-9 ]{0,20}`).Draw(t, label+".name")
	cents := rapid.Int64Range(0, 10_000_000).Draw(t, label+".cents")
	return newProduct(t, id, name, cents)
}

func TestProductRepository_Properties(t *testing.T) {
	ctx := context.Background()

	t.Run("add then get returns an equal product and delete removes it", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			repo := NewProductRepository()
			product := drawProduct(t, "product")

			_ = repo.Add(ctx, product)
			found, _ := repo.GetByID(ctx, product.ID())
			if !found.Equal(product) {
				t.Fatalf("expected %+v, got %+v", product, found)
			}

			_ = repo.Delete(ctx, product.ID())
			if found, _ := repo.GetByID(ctx, product.ID()); found != nil {
				t.Fatalf("expected absent after delete, got %+v", found)
			}
		})
	})

	t.Run("get all returns n products in insertion order", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			repo := NewProductRepository()
			n := rapid.IntRange(0, 30).Draw(t, "n")
			added := make([]*domain.Product, n)
			for i := range added {
				added[i] = drawProduct(t, "product")
				_ = repo.Add(ctx, added[i])
			}

			all, _ := repo.GetAll(ctx)
			if len(all) != n {
				t.Fatalf("expected %d products, got %d", n, len(all))
			}
			for i := range added {
				if all[i] != added[i] {
					t.Fatalf("index %d: expected %s, got %s", i, added[i].ID(), all[i].ID())
				}
			}
		})
	})

	t.Run("deleting an unknown id keeps the size", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			repo := NewProductRepository()
			n := rapid.IntRange(0, 10).Draw(t, "n")
			for i := 0; i < n; i++ {
				_ = repo.Add(ctx, drawProduct(t, "product"))
			}

			_ = repo.Delete(ctx, uuid.New())

			all, _ := repo.GetAll(ctx)
			if len(all) != n {
				t.Fatalf("expected %d products, got %d", n, len(all))
			}
		})
	})
}
