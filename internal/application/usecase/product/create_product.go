// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal // Optional, zero when unknown
	Platform    entity.Platform
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	if input.Price.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativePrice,
			"price must not be negative",
			domainerror.ErrNegativePrice,
		)
	}

	if input.Cost.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativeCost,
			"cost must not be negative",
			domainerror.ErrNegativeCost,
		)
	}

	// Sales join to products by name, so duplicate names for one user would
	// make the profit join ambiguous.
	existing, err := uc.productRepo.FindByNameAndUser(ctx, input.Name, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameExists,
			"a product with this name already exists",
			domainerror.ErrProductNameExists,
		)
	}

	product := entity.NewProduct(
		input.UserID,
		input.Name,
		input.Description,
		input.Price,
		input.Cost,
		input.Platform,
	)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}
