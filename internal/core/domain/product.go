package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxPriceDigits keeps a price representable as a decimal128 value and its
// plain rendering short.
const maxPriceDigits = 34

// Product is immutable once built. Replacing a stored product means building a new one.
type Product struct {
	id    uuid.UUID
	name  string
	price decimal.Decimal
}

func NewProduct(id uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("name", "product name cannot be empty or whitespace")
	}
	if price.IsNegative() {
		return nil, NewValidationError("price", "product price cannot be negative")
	}
	if !priceInRange(price) {
		return nil, NewValidationError("price", "product price is out of range")
	}

	return &Product{
		id:    id,
		name:  name,
		price: price,
	}, nil
}

// priceInRange bounds both the significant digits and the digits of the plain
// form on each side of the decimal point.
func priceInRange(price decimal.Decimal) bool {
	digits := int64(price.NumDigits())
	exp := int64(price.Exponent())
	return digits <= maxPriceDigits && exp >= -maxPriceDigits && digits+exp <= maxPriceDigits
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id && p.name == other.name && p.price.Equal(other.price)
}
