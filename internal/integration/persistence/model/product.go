package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null;index:idx_products_name_user"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Platform    string          `gorm:"type:varchar(50);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Cost:        m.Cost,
		Platform:    entity.Platform(m.Platform),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:          product.ID,
		UserID:      product.UserID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Cost:        product.Cost,
		Platform:    string(product.Platform),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
