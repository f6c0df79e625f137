package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	"github.com/marketing-manager/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create records a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Create(saleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ListForUser retrieves a user's sales ordered by creation time descending.
func (r *saleRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit *int) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit != nil {
		query = query.Limit(*limit)
	}

	var saleModels []model.SaleModel
	result := query.Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// ListForUserInRange retrieves a user's sales inside the inclusive window,
// newest sale date first with creation order breaking ties.
func (r *saleRepository) ListForUserInRange(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND sale_date >= ? AND sale_date <= ?", userID, startDate, endDate).
		Order("sale_date DESC").
		Order("created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// DateRange returns the min/max sale dates for a user.
func (r *saleRepository) DateRange(ctx context.Context, userID uuid.UUID) (*adapter.SaleDateRange, error) {
	var row struct {
		MinDate *time.Time
		MaxDate *time.Time
	}
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Select("MIN(sale_date) AS min_date, MAX(sale_date) AS max_date").
		Where("user_id = ?", userID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	return &adapter.SaleDateRange{
		MinDate: row.MinDate,
		MaxDate: row.MaxDate,
	}, nil
}

// CountForProductName counts sales referencing a product name for a user.
func (r *saleRepository) CountForProductName(ctx context.Context, userID uuid.UUID, productName string) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("user_id = ? AND product_name = ?", userID, productName).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func toSaleEntities(saleModels []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales
}
