// Package roi contains the metrics-engine use cases.
package roi

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/application/adapter"
)

// GetBasicROIInput represents the input for the basic ROI aggregate.
type GetBasicROIInput struct {
	UserID uuid.UUID
}

// GetBasicROIOutput represents the basic ROI aggregate: every expense of the
// user's campaigns against every sale of the user, with no date filtering.
type GetBasicROIOutput struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	ROI      decimal.Decimal `json:"roi"`

	// ErrorKind is empty for genuine numbers and ErrorKindDataAccess when
	// the record store failed and the zeros are a fallback.
	ErrorKind string `json:"error_kind,omitempty"`
}

// GetBasicROIUseCase computes the basic ROI aggregate.
type GetBasicROIUseCase struct {
	expenseRepo adapter.ExpenseRepository
	saleRepo    adapter.SaleRepository
}

// NewGetBasicROIUseCase creates a new GetBasicROIUseCase instance.
func NewGetBasicROIUseCase(
	expenseRepo adapter.ExpenseRepository,
	saleRepo adapter.SaleRepository,
) *GetBasicROIUseCase {
	return &GetBasicROIUseCase{
		expenseRepo: expenseRepo,
		saleRepo:    saleRepo,
	}
}

// Execute computes revenue, expenses, profit and ROI for the user. It never
// returns an error past the engine boundary: on a read failure it logs and
// returns the all-zero aggregate tagged with ErrorKindDataAccess.
func (uc *GetBasicROIUseCase) Execute(ctx context.Context, input GetBasicROIInput) *GetBasicROIOutput {
	ctx, cancel := context.WithTimeout(ctx, defaultAggregationTimeout)
	defer cancel()

	expenses, err := uc.expenseRepo.ListForUserCampaigns(ctx, input.UserID)
	if err != nil {
		slog.Error("basic ROI: failed to load expenses", "user_id", input.UserID, "error", err)
		return fallbackBasicROI()
	}

	sales, err := uc.saleRepo.ListForUser(ctx, input.UserID, nil)
	if err != nil {
		slog.Error("basic ROI: failed to load sales", "user_id", input.UserID, "error", err)
		return fallbackBasicROI()
	}

	expensesTotal := decimal.Zero
	for _, e := range expenses {
		expensesTotal = expensesTotal.Add(e.Amount)
	}

	revenueTotal := decimal.Zero
	for _, s := range sales {
		revenueTotal = revenueTotal.Add(s.TotalValue())
	}

	return &GetBasicROIOutput{
		Revenue:  revenueTotal,
		Expenses: expensesTotal,
		Profit:   revenueTotal.Sub(expensesTotal),
		ROI:      roiOf(revenueTotal, expensesTotal),
	}
}

func fallbackBasicROI() *GetBasicROIOutput {
	return &GetBasicROIOutput{
		Revenue:   decimal.Zero,
		Expenses:  decimal.Zero,
		Profit:    decimal.Zero,
		ROI:       decimal.Zero,
		ErrorKind: ErrorKindDataAccess,
	}
}
