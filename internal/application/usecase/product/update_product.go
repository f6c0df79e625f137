// Package product contains product-related use cases.
package product

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

// UpdateProductInput represents the input for product update.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Cost        decimal.Decimal
	Platform    entity.Platform
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product update. Editing cost rewrites historical
// profit under the live-lookup cost policy; that is the documented behavior.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
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

	product, err := uc.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	if product == nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	if product.UserID != input.UserID {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNotAuthorizedProduct,
			"not authorized to modify this product",
			domainerror.ErrNotAuthorizedToModifyProduct,
		)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Cost = input.Cost
	product.Platform = input.Platform
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &UpdateProductOutput{
		Product: product,
	}, nil
}
