// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform identifies the commerce platform a product, campaign or sale
// belongs to. Free-form values are accepted; the known platforms are the
// ones with connector support.
type Platform string

const (
	PlatformEduzz     Platform = "Eduzz"
	PlatformHotmart   Platform = "Hotmart"
	PlatformKiwify    Platform = "Kiwify"
	PlatformMonetizze Platform = "Monetizze"
)

// Product represents a sellable product registered by a user.
type Product struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal // Unit cost, zero when unknown
	Platform    Platform
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a new Product entity. Cost defaults to zero when the
// caller does not know it.
func NewProduct(
	userID uuid.UUID,
	name, description string,
	price, cost decimal.Decimal,
	platform Platform,
) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Price:       price,
		Cost:        cost,
		Platform:    platform,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
