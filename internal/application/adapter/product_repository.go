// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByNameAndUser retrieves a product by name for a user. Returns
	// (nil, nil) when no product matches; sales joins tolerate the gap.
	FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*entity.Product, error)

	// ListForUser retrieves all products owned by a user.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// Update updates an existing product in the database.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
