// Package roi contains the metrics-engine use cases: pure, deterministic
// aggregation of a user's sales, products, campaigns and expenses into
// ROI and profit aggregates.
//
// Every public operation in this package follows the same failure contract:
// a record-store error never escapes. The operation logs it, tags the result
// with ErrorKindDataAccess and returns the documented all-zero/empty
// aggregate so callers render a "no data" state instead of crashing.
package roi

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorKindDataAccess marks a result produced by the fallback path after a
// record-store read failed. An empty ErrorKind means the numbers are real,
// even when they are all zero.
const ErrorKindDataAccess = "data_access"

// defaultAggregationTimeout bounds every aggregation call so a slow record
// store cannot hang the caller indefinitely.
const defaultAggregationTimeout = 15 * time.Second

// periodLayout is the calendar-month bucket key format (YYYY-MM).
const periodLayout = "2006-01"

var oneHundred = decimal.NewFromInt(100)

// roiOf computes (revenue - investment) / investment * 100, returning zero
// when investment is zero so the engine never divides by zero or produces
// infinity.
func roiOf(revenue, investment decimal.Decimal) decimal.Decimal {
	if !investment.IsPositive() {
		return decimal.Zero
	}
	return revenue.Sub(investment).Div(investment).Mul(oneHundred)
}

// monthBucket returns the YYYY-MM bucket key for a date.
func monthBucket(t time.Time) string {
	return t.Format(periodLayout)
}

// dateOnly strips the time-of-day so window comparisons are inclusive on
// whole calendar days.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
