// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies what a campaign expense was spent on.
type ExpenseCategory string

const (
	ExpenseCategoryAds      ExpenseCategory = "ads"
	ExpenseCategoryCreative ExpenseCategory = "creative"
	ExpenseCategoryTools    ExpenseCategory = "tools"
	ExpenseCategoryOther    ExpenseCategory = "other"
)

// Expense represents a single spend entry. Every expense belongs to exactly
// one campaign; the campaign cannot be deleted while its expenses exist.
type Expense struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Category    ExpenseCategory
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	campaignID uuid.UUID,
	amount decimal.Decimal,
	description string,
	date time.Time,
	category ExpenseCategory,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		CampaignID:  campaignID,
		Amount:      amount,
		Description: description,
		Date:        date,
		Category:    category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
