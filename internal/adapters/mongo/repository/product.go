package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/adapters/mongo/document"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
	}
}

func byProductID(id uuid.UUID) bson.M {
	return bson.M{"product_id": id.String()}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	doc, err := r.FindFirst(ctx, byProductID(id))
	if err != nil || doc == nil {
		return nil, err
	}

	return doc.ToDomain()
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.FindAll(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i := range docs {
		product, err := docs[i].ToDomain()
		if err != nil {
			return nil, err
		}
		products[i] = product
	}

	return products, nil
}

func (r *ProductRepository) Add(ctx context.Context, product *domain.Product) error {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return err
	}

	return r.Create(ctx, doc)
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	doc, err := document.ToProductDocument(product)
	if err != nil {
		return err
	}

	_, err = r.ReplaceFirst(ctx, byProductID(product.ID()), doc)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.DeleteFirst(ctx, byProductID(id))
	return err
}
