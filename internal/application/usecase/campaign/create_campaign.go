// Package campaign contains campaign-related use cases.
package campaign

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

// CreateCampaignInput represents the input for campaign creation.
type CreateCampaignInput struct {
	UserID    uuid.UUID
	Name      string
	Platform  entity.Platform
	Budget    decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time // Nil for an open-ended campaign
}

// CreateCampaignOutput represents the output of campaign creation.
type CreateCampaignOutput struct {
	Campaign *entity.Campaign
}

// CreateCampaignUseCase handles campaign creation logic.
type CreateCampaignUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewCreateCampaignUseCase creates a new CreateCampaignUseCase instance.
func NewCreateCampaignUseCase(campaignRepo adapter.CampaignRepository) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute performs the campaign creation.
func (uc *CreateCampaignUseCase) Execute(ctx context.Context, input CreateCampaignInput) (*CreateCampaignOutput, error) {
	if !input.Budget.IsPositive() {
		return nil, domainerror.NewCampaignError(
			domainerror.ErrCodeInvalidBudget,
			"budget must be greater than zero",
			domainerror.ErrInvalidBudget,
		)
	}

	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewCampaignError(
			domainerror.ErrCodeEndBeforeStart,
			"end_date must not be before start_date",
			domainerror.ErrEndBeforeStart,
		)
	}

	campaign := entity.NewCampaign(
		input.UserID,
		input.Name,
		input.Platform,
		input.Budget,
		input.StartDate,
		input.EndDate,
	)

	if err := uc.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return &CreateCampaignOutput{
		Campaign: campaign,
	}, nil
}
