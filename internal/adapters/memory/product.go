package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

type ProductRepository struct {
	store *Store[uuid.UUID, domain.Product]
}

func NewProductRepository() port.ProductPort {
	return &ProductRepository{
		store: NewStore(func(p *domain.Product) uuid.UUID { return p.ID() }),
	}
}

func (r *ProductRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Product, error) {
	return r.store.Find(id), nil
}

func (r *ProductRepository) GetAll(context.Context) ([]*domain.Product, error) {
	return r.store.All(), nil
}

func (r *ProductRepository) Add(_ context.Context, product *domain.Product) error {
	r.store.Append(product)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, product *domain.Product) error {
	r.store.Replace(product)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.Remove(id)
	return nil
}
