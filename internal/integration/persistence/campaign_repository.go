package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	"github.com/marketing-manager/backend/internal/integration/persistence/model"
)

// campaignRepository implements the adapter.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository instance.
func NewCampaignRepository(db *gorm.DB) adapter.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// Create creates a new campaign in the database.
func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignModel := model.CampaignFromEntity(campaign)
	result := r.db.WithContext(ctx).Create(campaignModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a campaign by its ID. Returns (nil, nil) when no
// campaign matches.
func (r *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignModel model.CampaignModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&campaignModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return campaignModel.ToEntity(), nil
}

// ListForUser retrieves all campaigns owned by a user.
func (r *campaignRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Campaign, error) {
	var campaignModels []model.CampaignModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&campaignModels)
	if result.Error != nil {
		return nil, result.Error
	}

	campaigns := make([]*entity.Campaign, len(campaignModels))
	for i := range campaignModels {
		campaigns[i] = campaignModels[i].ToEntity()
	}
	return campaigns, nil
}

// Update updates an existing campaign in the database.
func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaignModel := model.CampaignFromEntity(campaign)
	result := r.db.WithContext(ctx).Save(campaignModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a campaign from the database.
func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CampaignModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
