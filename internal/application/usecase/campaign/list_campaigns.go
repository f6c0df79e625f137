// Package campaign contains campaign-related use cases.
package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ListCampaignsInput represents the input for listing campaigns.
type ListCampaignsInput struct {
	UserID uuid.UUID
}

// ListCampaignsOutput represents the output of listing campaigns.
type ListCampaignsOutput struct {
	Campaigns []*entity.Campaign
}

// ListCampaignsUseCase handles listing a user's campaigns.
type ListCampaignsUseCase struct {
	campaignRepo adapter.CampaignRepository
}

// NewListCampaignsUseCase creates a new ListCampaignsUseCase instance.
func NewListCampaignsUseCase(campaignRepo adapter.CampaignRepository) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{
		campaignRepo: campaignRepo,
	}
}

// Execute retrieves all campaigns owned by the user.
func (uc *ListCampaignsUseCase) Execute(ctx context.Context, input ListCampaignsInput) (*ListCampaignsOutput, error) {
	campaigns, err := uc.campaignRepo.ListForUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return &ListCampaignsOutput{
		Campaigns: campaigns,
	}, nil
}
