// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	campaignRepo adapter.CampaignRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	campaignRepo adapter.CampaignRepository,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:  expenseRepo,
		campaignRepo: campaignRepo,
	}
}

// Execute performs the expense deletion after checking ownership through the
// expense's campaign.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, expense.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to find campaign: %w", err)
	}
	if campaign == nil || campaign.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCampaignNotFound,
			"campaign for expense not found",
			domainerror.ErrExpenseCampaignNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	return &DeleteExpenseOutput{
		Success: true,
	}, nil
}
