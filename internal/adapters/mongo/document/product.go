package document

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	ProductID string               `bson:"product_id"`
	Name      string               `bson:"name"`
	Price     primitive.Decimal128 `bson:"price"`
}

func (doc ProductDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *ProductDocument) ToDomain() (*domain.Product, error) {
	id, err := uuid.Parse(doc.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id %q: %w", doc.ProductID, err)
	}

	price, err := decimal.NewFromString(doc.Price.String())
	if err != nil {
		return nil, fmt.Errorf("invalid price for product %s: %w", doc.ProductID, err)
	}

	return domain.NewProduct(id, doc.Name, price)
}

func ToProductDocument(p *domain.Product) (*ProductDocument, error) {
	price, err := primitive.ParseDecimal128(p.Price().String())
	if err != nil {
		return nil, fmt.Errorf("price %s does not fit decimal128: %w", p.Price(), err)
	}

	return &ProductDocument{
		ProductID: p.ID().String(),
		Name:      p.Name(),
		Price:     price,
	}, nil
}
