// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// SaleDateRange represents the span of a user's sale dates. Both fields are
// nil when the user has no sales.
type SaleDateRange struct {
	MinDate *time.Time
	MaxDate *time.Time
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create records a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// ListForUser retrieves a user's sales ordered by creation time
	// descending. A nil limit returns all of them.
	ListForUser(ctx context.Context, userID uuid.UUID, limit *int) ([]*entity.Sale, error)

	// ListForUserInRange retrieves a user's sales with sale_date in the
	// inclusive [startDate, endDate] window, ordered by sale_date descending
	// with creation order breaking ties.
	ListForUserInRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Sale, error)

	// DateRange returns the min/max sale dates for a user.
	DateRange(ctx context.Context, userID uuid.UUID) (*SaleDateRange, error)

	// CountForProductName counts sales referencing a product name for a user
	// (product deletion guard).
	CountForProductName(ctx context.Context, userID uuid.UUID, productName string) (int64, error)
}
