// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"encoding/json"
	"time"
)

// PlatformConnector fetches sales and product data from one external
// commerce platform on behalf of one user. Implementations hold their own
// credential set; instances are never shared across users or platforms.
//
// Error contract: GetSales and GetProducts fail with a domain PlatformError
// of kind auth, upstream or network. On a 401-class response the connector
// attempts exactly one refresh-and-retry cycle before surfacing the failure.
// Payloads are passed through as raw JSON: the wire format is dictated by
// the vendor and treated as unstable.
type PlatformConnector interface {
	// PlatformName returns the official platform name.
	PlatformName() string

	// GetSales fetches sales in the inclusive [startDate, endDate] window.
	GetSales(ctx context.Context, startDate, endDate time.Time) (json.RawMessage, error)

	// GetProducts fetches the product catalog.
	GetProducts(ctx context.Context) (json.RawMessage, error)

	// RefreshCredentials renews the connector's credentials. Platforms
	// without token expiry implement this as a no-op returning true.
	RefreshCredentials(ctx context.Context) (bool, error)

	// TestConnection calls GetProducts, swallows and logs any failure, and
	// reports whether the credentials work.
	TestConnection(ctx context.Context) bool
}
