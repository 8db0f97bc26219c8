package port

import (
	"context"

	"github.com/rafaelleal24/apiweb/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// CustomerPort mirrors ProductPort over integer identifiers.
type CustomerPort interface {
	GetByID(ctx context.Context, id int) (*domain.Customer, error)
	GetAll(ctx context.Context) ([]*domain.Customer, error)
	Add(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int) error
}
