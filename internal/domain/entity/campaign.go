// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a marketing campaign owned by a user.
type Campaign struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Platform  Platform
	Budget    decimal.Decimal
	StartDate time.Time
	EndDate   *time.Time // Nil means open-ended, running until today
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCampaign creates a new Campaign entity.
func NewCampaign(
	userID uuid.UUID,
	name string,
	platform Platform,
	budget decimal.Decimal,
	startDate time.Time,
	endDate *time.Time,
) *Campaign {
	now := time.Now().UTC()

	return &Campaign{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Platform:  platform,
		Budget:    budget,
		StartDate: startDate,
		EndDate:   endDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EffectiveEndDate returns the campaign end date, or the given reference
// date when the campaign is open-ended.
func (c *Campaign) EffectiveEndDate(today time.Time) time.Time {
	if c.EndDate != nil {
		return *c.EndDate
	}
	return today
}
