package dto

import (
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	CampaignID  string  `json:"campaign_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseListResponse represents the response for expense listing.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		CampaignID:  expense.CampaignID.String(),
		Amount:      expense.Amount.InexactFloat64(),
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		Category:    string(expense.Category),
		CreatedAt:   expense.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of expenses to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: responses,
		Total:    len(responses),
	}
}
