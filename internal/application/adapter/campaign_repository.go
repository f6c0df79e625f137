// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// CampaignRepository defines the interface for campaign persistence operations.
type CampaignRepository interface {
	// Create creates a new campaign in the database.
	Create(ctx context.Context, campaign *entity.Campaign) error

	// FindByID retrieves a campaign by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)

	// ListForUser retrieves all campaigns owned by a user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error)

	// Update updates an existing campaign in the database.
	Update(ctx context.Context, campaign *entity.Campaign) error

	// Delete removes a campaign from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
