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

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product by its ID. Returns (nil, nil) when no
// product matches.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByNameAndUser retrieves a product by name for a user. Returns
// (nil, nil) when no product matches: the sales join tolerates missing
// products.
func (r *productRepository) FindByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).
		Where("name = ? AND user_id = ?", name, userID).
		First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// ListForUser retrieves all products owned by a user.
func (r *productRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.Product, len(productModels))
	for i := range productModels {
		products[i] = productModels[i].ToEntity()
	}
	return products, nil
}

// Update updates an existing product in the database.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Save(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a product from the database.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
