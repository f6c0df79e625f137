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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an expense by its ID. Returns (nil, nil) when no
// expense matches.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// ListForCampaign retrieves all expenses of one campaign.
func (r *expenseRepository) ListForCampaign(ctx context.Context, campaignID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("date DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// ListForUserCampaigns retrieves every expense whose campaign belongs to the
// user. Expenses reach their owner only through the campaigns table.
func (r *expenseRepository) ListForUserCampaigns(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = expenses.campaign_id").
		Where("campaigns.user_id = ?", userID).
		Order("expenses.date DESC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toExpenseEntities(expenseModels), nil
}

// CountForCampaign counts expenses referencing a campaign.
func (r *expenseRepository) CountForCampaign(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("campaign_id = ?", campaignID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toExpenseEntities(expenseModels []model.ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses
}
