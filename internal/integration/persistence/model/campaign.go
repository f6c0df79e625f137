package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// CampaignModel represents the campaigns table in the database.
type CampaignModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Platform  string          `gorm:"type:varchar(50);not null;index"`
	Budget    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartDate time.Time       `gorm:"type:date;not null"`
	EndDate   *time.Time      `gorm:"type:date"` // Null means open-ended
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CampaignModel.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToEntity converts a CampaignModel to a domain Campaign entity.
func (m *CampaignModel) ToEntity() *entity.Campaign {
	return &entity.Campaign{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Platform:  entity.Platform(m.Platform),
		Budget:    m.Budget,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CampaignFromEntity creates a CampaignModel from a domain Campaign entity.
func CampaignFromEntity(campaign *entity.Campaign) *CampaignModel {
	return &CampaignModel{
		ID:        campaign.ID,
		UserID:    campaign.UserID,
		Name:      campaign.Name,
		Platform:  string(campaign.Platform),
		Budget:    campaign.Budget,
		StartDate: campaign.StartDate,
		EndDate:   campaign.EndDate,
		CreatedAt: campaign.CreatedAt,
		UpdatedAt: campaign.UpdatedAt,
	}
}
