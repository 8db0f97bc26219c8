package service

import (
	"context"

	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

type CustomerService struct {
	customerRepository port.CustomerPort
}

func NewCustomerService(customerRepository port.CustomerPort) *CustomerService {
	return &CustomerService{customerRepository: customerRepository}
}

func (s *CustomerService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	return s.customerRepository.GetByID(ctx, id)
}

func (s *CustomerService) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	return s.customerRepository.GetAll(ctx)
}

func (s *CustomerService) Add(ctx context.Context, customer *domain.Customer) error {
	if err := s.customerRepository.Add(ctx, customer); err != nil {
		logger.Error(ctx, "customer: add failed", err, map[string]any{
			"customer_id": customer.ID,
		})
		return err
	}

	logger.Info(ctx, "Customer added", map[string]any{"customer_id": customer.ID})
	return nil
}

func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	return s.customerRepository.Update(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.customerRepository.Delete(ctx, id)
}
