package document

import (
	"github.com/rafaelleal24/apiweb/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CustomerDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID int                `bson:"customer_id"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
}

func (doc CustomerDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *CustomerDocument) ToDomain() *domain.Customer {
	return domain.NewCustomer(doc.CustomerID, doc.Name, doc.Email)
}

func ToCustomerDocument(c *domain.Customer) *CustomerDocument {
	return &CustomerDocument{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
	}
}
