package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product represents a purchasable catalog item
type Product struct {
	Code          string          `json:"code" yaml:"code" validate:"required"`
	Description   string          `json:"description" yaml:"description" validate:"required"`
	Price         decimal.Decimal `json:"price" yaml:"-"`
	UnitOfMeasure string          `json:"unitOfMeasure" yaml:"unitOfMeasure" validate:"required"`
	AvailableQty  int             `json:"availableQty" yaml:"availableQty" validate:"gte=0"`
	ImageRef      string          `json:"imageRef" yaml:"imageRef"`
}

// ErrNegativePrice is returned when a product is priced below zero
var ErrNegativePrice = errors.New("product price must not be negative")

// NewProduct creates a product from a decimal price string such as "5.99"
func NewProduct(code, description, price, unitOfMeasure string, availableQty int, imageRef string) (Product, error) {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return Product{}, fmt.Errorf("invalid price %q for product %s: %w", price, code, err)
	}
	if p.IsNegative() {
		return Product{}, fmt.Errorf("%w: %s", ErrNegativePrice, code)
	}

	return Product{
		Code:          code,
		Description:   description,
		Price:         p,
		UnitOfMeasure: unitOfMeasure,
		AvailableQty:  availableQty,
		ImageRef:      imageRef,
	}, nil
}

// FormattedPrice returns the unit price with a fixed two decimal display
func (p Product) FormattedPrice() string {
	return "$" + p.Price.StringFixed(2)
}
