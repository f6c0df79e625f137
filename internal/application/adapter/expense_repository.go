// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// ListForCampaign retrieves all expenses of one campaign.
	ListForCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Expense, error)

	// ListForUserCampaigns retrieves every expense whose campaign belongs to
	// the user (the ownership join the metrics engine aggregates over).
	ListForUserCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// CountForCampaign counts expenses referencing a campaign (deletion guard).
	CountForCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error)

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
