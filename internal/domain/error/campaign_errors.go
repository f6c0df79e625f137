// Package error defines domain-specific errors for the Marketing Manager application.
package error

import "errors"

// Campaign domain errors.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrCampaignHasExpenses is returned when deleting a campaign that still has expenses.
	ErrCampaignHasExpenses = errors.New("campaign has associated expenses")

	// ErrInvalidBudget is returned when a campaign budget is zero or negative.
	ErrInvalidBudget = errors.New("budget must be greater than zero")

	// ErrEndBeforeStart is returned when a campaign end date precedes its start date.
	ErrEndBeforeStart = errors.New("end_date must not be before start_date")

	// ErrNotAuthorizedToModifyCampaign is returned when a user does not own the campaign.
	ErrNotAuthorizedToModifyCampaign = errors.New("not authorized to modify this campaign")
)

// CampaignErrorCode defines error codes for campaign errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CampaignErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudget  CampaignErrorCode = "CMP-010001"
	ErrCodeEndBeforeStart CampaignErrorCode = "CMP-010002"

	// Not found / authorization errors (02XXXX)
	ErrCodeCampaignNotFound      CampaignErrorCode = "CMP-020001"
	ErrCodeNotAuthorizedCampaign CampaignErrorCode = "CMP-020002"

	// Referential guard errors (03XXXX)
	ErrCodeCampaignHasExpenses CampaignErrorCode = "CMP-030001"

	// Internal errors (99XXXX)
	ErrCodeCampaignInternalError CampaignErrorCode = "CMP-990001"
)

// CampaignError represents a campaign error with code and message.
type CampaignError struct {
	Code    CampaignErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CampaignError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CampaignError) Unwrap() error {
	return e.Err
}

// NewCampaignError creates a new CampaignError with the given code and message.
func NewCampaignError(code CampaignErrorCode, message string, err error) *CampaignError {
	return &CampaignError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
