package redis

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/logger"
	"github.com/rafaelleal24/apiweb/internal/core/port"
	"github.com/shopspring/decimal"
)

const ProductCachePrefix = "product"

type CachedProduct struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

func NewCachedProduct(product *domain.Product) *CachedProduct {
	return &CachedProduct{
		ID:    product.ID().String(),
		Name:  product.Name(),
		Price: product.Price().String(),
	}
}

func (c *CachedProduct) ToDomain() (*domain.Product, error) {
	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(c.Price)
	if err != nil {
		return nil, err
	}
	return domain.NewProduct(id, c.Name, price)
}

// CachedProductRepository is a read-through cache in front of another product repository.
// Only present products are cached. Writes invalidate the key after the wrapped call succeeds.
// Cache failures are logged and never surface to the caller.
type CachedProductRepository struct {
	next  port.ProductPort
	cache port.CachePort[CachedProduct]
	ttl   time.Duration
}

func NewCachedProductRepository(next port.ProductPort, cache port.CachePort[CachedProduct], ttl time.Duration) port.ProductPort {
	return &CachedProductRepository{next: next, cache: cache, ttl: ttl}
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	key := id.String()

	cached, err := r.cache.Get(ctx, key)
	if err != nil {
		logger.Warn(ctx, "product cache: get failed", map[string]any{"product_id": key, "error": err.Error()})
	}
	if cached != nil {
		product, err := cached.ToDomain()
		if err == nil {
			return product, nil
		}
		logger.Warn(ctx, "product cache: corrupt entry", map[string]any{"product_id": key, "error": err.Error()})
	}

	product, err := r.next.GetByID(ctx, id)
	if err != nil || product == nil {
		return product, err
	}

	if err := r.cache.Set(ctx, key, NewCachedProduct(product), r.ttl); err != nil {
		logger.Warn(ctx, "product cache: set failed", map[string]any{"product_id": key, "error": err.Error()})
	}
	return product, nil
}

func (r *CachedProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return r.next.GetAll(ctx)
}

func (r *CachedProductRepository) Add(ctx context.Context, product *domain.Product) error {
	if err := r.next.Add(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID())
	return nil
}

func (r *CachedProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := r.next.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, product.ID())
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedProductRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.cache.Del(ctx, id.String()); err != nil {
		logger.Warn(ctx, "product cache: invalidate failed", map[string]any{"product_id": id.String(), "error": err.Error()})
	}
}
