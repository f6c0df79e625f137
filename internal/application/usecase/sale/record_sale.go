// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// RecordSaleInput represents the input for sale recording. Price and cost
// are snapshotted from the product at recording time.
type RecordSaleInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Platform  entity.Platform
	SaleDate  time.Time
}

// RecordSaleOutput represents the output of sale recording.
type RecordSaleOutput struct {
	SaleID      uuid.UUID
	ProductName string
	Amount      decimal.Decimal
	Quantity    int
	Cost        decimal.Decimal
	TotalValue  decimal.Decimal
	SaleDate    time.Time
	Platform    entity.Platform
	CreatedAt   time.Time
}

// RecordSaleUseCase handles sale recording logic.
type RecordSaleUseCase struct {
	saleRepo    adapter.SaleRepository
	productRepo adapter.ProductRepository
}

// NewRecordSaleUseCase creates a new RecordSaleUseCase instance.
func NewRecordSaleUseCase(
	saleRepo adapter.SaleRepository,
	productRepo adapter.ProductRepository,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// Execute records a sale against one of the user's products, copying the
// product's current price and cost into the sale row. The product may later
// change or disappear without touching recorded sales.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be at least 1",
			domainerror.ErrInvalidQuantity,
		)
	}

	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil || product.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeSaleProductNotFound,
			"product for sale not found",
			domainerror.ErrSaleProductNotFound,
		)
	}

	platform := input.Platform
	if platform == "" {
		platform = product.Platform
	}

	saleDate := input.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now().UTC()
	}

	sale := entity.NewSale(
		input.UserID,
		product.Name,
		product.Price,
		input.Quantity,
		product.Cost,
		saleDate,
		platform,
	)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &RecordSaleOutput{
		SaleID:      sale.ID,
		ProductName: sale.ProductName,
		Amount:      sale.Amount,
		Quantity:    sale.Quantity,
		Cost:        sale.Cost,
		TotalValue:  sale.TotalValue(),
		SaleDate:    sale.SaleDate,
		Platform:    sale.Platform,
		CreatedAt:   sale.CreatedAt,
	}, nil
}
