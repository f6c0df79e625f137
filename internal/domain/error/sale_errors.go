// Package error defines domain-specific errors for the Marketing Manager application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleProductNotFound is returned when recording a sale against a missing product.
	ErrSaleProductNotFound = errors.New("product for sale not found")

	// ErrInvalidQuantity is returned when a sale quantity is below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrNegativeSaleAmount is returned when a sale unit price is negative.
	ErrNegativeSaleAmount = errors.New("amount must not be negative")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidQuantity    SaleErrorCode = "SAL-010001"
	ErrCodeNegativeSaleAmount SaleErrorCode = "SAL-010002"

	// Not found errors (02XXXX)
	ErrCodeSaleProductNotFound SaleErrorCode = "SAL-020001"

	// Internal errors (99XXXX)
	ErrCodeSaleInternalError SaleErrorCode = "SAL-990001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
