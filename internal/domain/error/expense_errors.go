// Package error defines domain-specific errors for the Marketing Manager application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNegativeExpenseAmount is returned when an expense amount is negative.
	ErrNegativeExpenseAmount = errors.New("amount must not be negative")

	// ErrExpenseCampaignNotFound is returned when the target campaign does not exist.
	ErrExpenseCampaignNotFound = errors.New("campaign for expense not found")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeExpenseAmount ExpenseErrorCode = "EXP-010001"

	// Not found errors (02XXXX)
	ErrCodeExpenseNotFound         ExpenseErrorCode = "EXP-020001"
	ErrCodeExpenseCampaignNotFound ExpenseErrorCode = "EXP-020002"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
