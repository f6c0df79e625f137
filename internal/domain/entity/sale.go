// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale represents a recorded sale. ProductName is a loose reference to
// Product.Name: the product may be renamed or removed after the sale is
// recorded, and joins must tolerate the mismatch.
type Sale struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ProductName string
	Amount      decimal.Decimal // Unit price at sale time
	Quantity    int
	Cost        decimal.Decimal // Unit cost snapshot at sale time
	SaleDate    time.Time
	Platform    Platform
	CreatedAt   time.Time
}

// NewSale creates a new Sale entity.
func NewSale(
	userID uuid.UUID,
	productName string,
	amount decimal.Decimal,
	quantity int,
	cost decimal.Decimal,
	saleDate time.Time,
	platform Platform,
) *Sale {
	return &Sale{
		ID:          uuid.New(),
		UserID:      userID,
		ProductName: productName,
		Amount:      amount,
		Quantity:    quantity,
		Cost:        cost,
		SaleDate:    saleDate,
		Platform:    platform,
		CreatedAt:   time.Now().UTC(),
	}
}

// TotalValue returns amount * quantity. Always derived, never stored.
func (s *Sale) TotalValue() decimal.Decimal {
	return s.Amount.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
