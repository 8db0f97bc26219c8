package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest accepts price either as a JSON number or a quoted decimal string.
type CreateProductRequest struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
