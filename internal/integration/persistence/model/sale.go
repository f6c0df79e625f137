package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database. ProductName is kept
// as plain text rather than a foreign key: sales must survive product
// renames and deletions.
type SaleModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Quantity    int             `gorm:"not null;default:1"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SaleDate    time.Time       `gorm:"type:date;not null;index"`
	Platform    string          `gorm:"type:varchar(50);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:          m.ID,
		UserID:      m.UserID,
		ProductName: m.ProductName,
		Amount:      m.Amount,
		Quantity:    m.Quantity,
		Cost:        m.Cost,
		SaleDate:    m.SaleDate,
		Platform:    entity.Platform(m.Platform),
		CreatedAt:   m.CreatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:          sale.ID,
		UserID:      sale.UserID,
		ProductName: sale.ProductName,
		Amount:      sale.Amount,
		Quantity:    sale.Quantity,
		Cost:        sale.Cost,
		SaleDate:    sale.SaleDate,
		Platform:    string(sale.Platform),
		CreatedAt:   sale.CreatedAt,
	}
}
