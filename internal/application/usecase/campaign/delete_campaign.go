// Package campaign contains campaign-related use cases.
package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

// DeleteCampaignInput represents the input for campaign deletion.
type DeleteCampaignInput struct {
	CampaignID uuid.UUID
	UserID     uuid.UUID
}

// DeleteCampaignOutput represents the output of campaign deletion.
type DeleteCampaignOutput struct {
	Success bool
}

// DeleteCampaignUseCase handles campaign deletion logic.
type DeleteCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
	expenseRepo  adapter.ExpenseRepository
}

// NewDeleteCampaignUseCase creates a new DeleteCampaignUseCase instance.
func NewDeleteCampaignUseCase(
	campaignRepo adapter.CampaignRepository,
	expenseRepo adapter.ExpenseRepository,
) *DeleteCampaignUseCase {
	return &DeleteCampaignUseCase{
		campaignRepo: campaignRepo,
		expenseRepo:  expenseRepo,
	}
}

// Execute performs the campaign deletion. Expenses belong to exactly one
// campaign, so the campaign cannot go while its expenses exist.
func (uc *DeleteCampaignUseCase) Execute(ctx context.Context, input DeleteCampaignInput) (*DeleteCampaignOutput, error) {
	campaign, err := uc.campaignRepo.FindByID(ctx, input.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to find campaign: %w", err)
	}
	if campaign == nil {
		return nil, domainerror.NewCampaignError(
			domainerror.ErrCodeCampaignNotFound,
			"campaign not found",
			domainerror.ErrCampaignNotFound,
		)
	}

	if campaign.UserID != input.UserID {
		return nil, domainerror.NewCampaignError(
			domainerror.ErrCodeNotAuthorizedCampaign,
			"not authorized to modify this campaign",
			domainerror.ErrNotAuthorizedToModifyCampaign,
		)
	}

	expenseCount, err := uc.expenseRepo.CountForCampaign(ctx, input.CampaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to count campaign expenses: %w", err)
	}
	if expenseCount > 0 {
		return nil, domainerror.NewCampaignError(
			domainerror.ErrCodeCampaignHasExpenses,
			"campaign has associated expenses",
			domainerror.ErrCampaignHasExpenses,
		)
	}

	if err := uc.campaignRepo.Delete(ctx, input.CampaignID); err != nil {
		return nil, fmt.Errorf("failed to delete campaign: %w", err)
	}

	return &DeleteCampaignOutput{
		Success: true,
	}, nil
}
