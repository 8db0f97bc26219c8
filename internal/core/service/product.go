package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port"
)

type ProductService struct {
	productRepository port.ProductPort
}

func NewProductService(productRepository port.ProductPort) *ProductService {
	return &ProductService{productRepository: productRepository}
}

// GetByID returns (nil, nil) when the product does not exist.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.productRepository.GetByID(ctx, id)
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.productRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	logger.Debug(ctx, "product: listed", map[string]any{"count": len(products)})
	return products, nil
}

func (s *ProductService) Add(ctx context.Context, product *domain.Product) error {
	if err := s.productRepository.Add(ctx, product); err != nil {
		logger.Error(ctx, "product: add failed", err, map[string]any{
			"product_id": product.ID().String(),
			"name":       product.Name(),
			"price":      product.Price().String(),
		})
		return err
	}

	logger.Info(ctx, "Product added", map[string]any{"product_id": product.ID().String()})
	return nil
}

func (s *ProductService) Update(ctx context.Context, product *domain.Product) error {
	return s.productRepository.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepository.Delete(ctx, id)
}
