package memory

import (
	"context"

	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

type CustomerRepository struct {
	store *Store[int, domain.Customer]
}

func NewCustomerRepository() port.CustomerPort {
	return &CustomerRepository{
		store: NewStore(func(c *domain.Customer) int { return c.ID }),
	}
}

func (r *CustomerRepository) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	return r.store.Find(id), nil
}

func (r *CustomerRepository) GetAll(context.Context) ([]*domain.Customer, error) {
	return r.store.All(), nil
}

func (r *CustomerRepository) Add(_ context.Context, customer *domain.Customer) error {
	r.store.Append(customer)
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, customer *domain.Customer) error {
	r.store.Replace(customer)
	return nil
}

func (r *CustomerRepository) Delete(_ context.Context, id int) error {
	r.store.Remove(id)
	return nil
}
