package repository

import (
	"context"

	"github.com/rafaelleal24/apiweb/internal/adapters/mongo/document"
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"github.com/rafaelleal24/apiweb/internal/core/port"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository struct {
	*BaseRepository[document.CustomerDocument]
}

func NewCustomerRepository(db *mongo.Database) port.CustomerPort {
	return &CustomerRepository{
		BaseRepository: NewBaseRepository[document.CustomerDocument](db, "customers"),
	}
}

func byCustomerID(id int) bson.M {
	return bson.M{"customer_id": id}
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	doc, err := r.FindFirst(ctx, byCustomerID(id))
	if err != nil || doc == nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

func (r *CustomerRepository) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	docs, err := r.FindAll(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	customers := make([]*domain.Customer, len(docs))
	for i := range docs {
		customers[i] = docs[i].ToDomain()
	}

	return customers, nil
}

func (r *CustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	return r.Create(ctx, document.ToCustomerDocument(customer))
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	_, err := r.ReplaceFirst(ctx, byCustomerID(customer.ID), document.ToCustomerDocument(customer))
	return err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DeleteFirst(ctx, byCustomerID(id))
	return err
}
