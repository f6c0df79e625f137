// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses. A nil
// CampaignID lists every expense across the user's campaigns.
type ListExpensesInput struct {
	UserID     uuid.UUID
	CampaignID *uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase handles listing expenses.
type ListExpensesUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	campaignRepo adapter.CampaignRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(
	expenseRepo adapter.ExpenseRepository,
	campaignRepo adapter.CampaignRepository,
) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo:  expenseRepo,
		campaignRepo: campaignRepo,
	}
}

// Execute retrieves expenses for the user, optionally scoped to one campaign.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if input.CampaignID == nil {
		expenses, err := uc.expenseRepo.ListForUserCampaigns(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		return &ListExpensesOutput{Expenses: expenses}, nil
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, *input.CampaignID)
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

	expenses, err := uc.expenseRepo.ListForCampaign(ctx, *input.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign expenses: %w", err)
	}

	return &ListExpensesOutput{
		Expenses: expenses,
	}, nil
}
