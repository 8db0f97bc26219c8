package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventAction string

const (
	EventActionAdded   EventAction = "added"
	EventActionUpdated EventAction = "updated"
	EventActionDeleted EventAction = "deleted"
)

type ProductEvent struct {
	Action     EventAction     `json:"action"`
	ProductID  uuid.UUID       `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func (e *ProductEvent) GetName() string {
	return "product." + string(e.Action)
}

func (e *ProductEvent) GetEntityName() string {
	return "product"
}

func NewProductEvent(action EventAction, product *Product, occurredAt time.Time) *ProductEvent {
	return &ProductEvent{
		Action:     action,
		ProductID:  product.ID(),
		Name:       product.Name(),
		Price:      product.Price(),
		OccurredAt: occurredAt,
	}
}

type CustomerEvent struct {
	Action     EventAction `json:"action"`
	CustomerID int         `json:"customer_id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func (e *CustomerEvent) GetName() string {
	return "customer." + string(e.Action)
}

func (e *CustomerEvent) GetEntityName() string {
	return "customer"
}

func NewCustomerEvent(action EventAction, customer *Customer, occurredAt time.Time) *CustomerEvent {
	return &CustomerEvent{
		Action:     action,
		CustomerID: customer.ID,
		Name:       customer.Name,
		Email:      customer.Email,
		OccurredAt: occurredAt,
	}
}
