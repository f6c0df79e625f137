package sale

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ListSalesInput represents the input for sale listing. A nil Limit returns
// every sale.
type ListSalesInput struct {
	UserID uuid.UUID
	Limit  *int
}

// ListSalesOutput represents the output of sale listing, most recent first.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute lists the user's sales ordered by creation time descending.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.ListForUser(ctx, input.UserID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
