// Package expense contains expense-related use cases.
package expense

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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	CampaignID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    entity.ExpenseCategory
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	campaignRepo adapter.CampaignRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	campaignRepo adapter.CampaignRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		campaignRepo: campaignRepo,
	}
}

// Execute performs the expense creation. The target campaign must exist and
// belong to the requesting user.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}

	campaign, err := uc.campaignRepo.FindByID(ctx, input.CampaignID)
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

	category := input.Category
	if category == "" {
		category = entity.ExpenseCategoryOther
	}

	expense := entity.NewExpense(
		input.CampaignID,
		input.Amount,
		input.Description,
		input.Date,
		category,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}
