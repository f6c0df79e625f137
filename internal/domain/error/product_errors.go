// Package error defines domain-specific errors for the Marketing Manager application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameExists is returned when a product with the same name already exists for the user.
	ErrProductNameExists = errors.New("a product with this name already exists")

	// ErrProductHasSales is returned when deleting a product that sales still reference by name.
	ErrProductHasSales = errors.New("product has associated sales")

	// ErrNegativePrice is returned when a product price is negative.
	ErrNegativePrice = errors.New("price must not be negative")

	// ErrNegativeCost is returned when a product cost is negative.
	ErrNegativeCost = errors.New("cost must not be negative")

	// ErrNotAuthorizedToModifyProduct is returned when a user does not own the product.
	ErrNotAuthorizedToModifyProduct = errors.New("not authorized to modify this product")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativePrice      ProductErrorCode = "PRD-010001"
	ErrCodeNegativeCost       ProductErrorCode = "PRD-010002"
	ErrCodeProductNameExists  ProductErrorCode = "PRD-010003"

	// Not found / authorization errors (02XXXX)
	ErrCodeProductNotFound       ProductErrorCode = "PRD-020001"
	ErrCodeNotAuthorizedProduct  ProductErrorCode = "PRD-020002"

	// Referential guard errors (03XXXX)
	ErrCodeProductHasSales ProductErrorCode = "PRD-030001"

	// Internal errors (99XXXX)
	ErrCodeProductInternalError ProductErrorCode = "PRD-990001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
