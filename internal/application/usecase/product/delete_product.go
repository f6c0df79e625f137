// Package product contains product-related use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	ProductID uuid.UUID
	UserID    uuid.UUID
}

// DeleteProductOutput represents the output of product deletion.
type DeleteProductOutput struct {
	Success bool
}

// DeleteProductUseCase handles product deletion logic.
type DeleteProductUseCase struct {
	productRepo adapter.ProductRepository
	saleRepo    adapter.SaleRepository
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(
	productRepo adapter.ProductRepository,
	saleRepo adapter.SaleRepository,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// Execute performs the product deletion. Sales reference products by name,
// so deletion is blocked while any sale of this user carries the product's
// name.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
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

	saleCount, err := uc.saleRepo.CountForProductName(ctx, input.UserID, product.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to count product sales: %w", err)
	}
	if saleCount > 0 {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductHasSales,
			"product has associated sales",
			domainerror.ErrProductHasSales,
		)
	}

	if err := uc.productRepo.Delete(ctx, input.ProductID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	return &DeleteProductOutput{
		Success: true,
	}, nil
}
