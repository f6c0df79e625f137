// Package error defines domain-specific errors for the Marketing Manager application.
package error

import "errors"

// ROI/metrics domain errors.
var (
	// ErrMetricsDataAccess is returned internally when the record store fails
	// during an aggregation. It never crosses the metrics-engine boundary;
	// callers receive the documented all-zero aggregate instead.
	ErrMetricsDataAccess = errors.New("record store read failed during aggregation")

	// ErrInvalidMetricsDateRange is returned when end_date is before start_date.
	ErrInvalidMetricsDateRange = errors.New("end_date must not be before start_date")
)

// ROIErrorCode defines error codes for metrics-engine errors.
// Format: ROI-XXYYYY where XX is category and YYYY is specific error.
type ROIErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMetricsDateRange ROIErrorCode = "ROI-010001"

	// Internal errors (99XXXX)
	ErrCodeMetricsDataAccess ROIErrorCode = "ROI-990001"
)
