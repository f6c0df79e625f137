package dto

import (
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// CreateCampaignRequest represents the request body for campaign creation.
// Dates use the YYYY-MM-DD format; end_date may be omitted for open-ended
// campaigns.
type CreateCampaignRequest struct {
	Name      string  `json:"name" binding:"required,min=1,max=255"`
	Platform  string  `json:"platform" binding:"required"`
	Budget    float64 `json:"budget" binding:"required"`
	StartDate string  `json:"start_date" binding:"required"`
	EndDate   string  `json:"end_date"`
}

// CampaignResponse represents a campaign in API responses.
type CampaignResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	Budget    float64   `json:"budget"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CampaignListResponse represents the response for campaign listing.
type CampaignListResponse struct {
	Campaigns []CampaignResponse `json:"campaigns"`
	Total     int                `json:"total"`
}

// ToCampaignResponse converts a domain Campaign entity to a CampaignResponse DTO.
func ToCampaignResponse(campaign *entity.Campaign) CampaignResponse {
	resp := CampaignResponse{
		ID:        campaign.ID.String(),
		Name:      campaign.Name,
		Platform:  string(campaign.Platform),
		Budget:    campaign.Budget.InexactFloat64(),
		StartDate: campaign.StartDate.Format("2006-01-02"),
		CreatedAt: campaign.CreatedAt,
	}
	if campaign.EndDate != nil {
		resp.EndDate = campaign.EndDate.Format("2006-01-02")
	}
	return resp
}

// ToCampaignListResponse converts a slice of campaigns to a list response.
func ToCampaignListResponse(campaigns []*entity.Campaign) CampaignListResponse {
	responses := make([]CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		responses[i] = ToCampaignResponse(c)
	}
	return CampaignListResponse{
		Campaigns: responses,
		Total:     len(responses),
	}
}
