package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// ProductPort is the storage contract for products. GetByID returns (nil, nil) when
// no product has the given id. Update and Delete are no-ops for unknown ids.
type ProductPort interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Add(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
