package platforms

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

const kiwifyBaseURL = "https://api.kiwify.com.br/v1/"

// KiwifyCredentials holds one user's Kiwify API key.
type KiwifyCredentials struct {
	APIKey string
}

// KiwifyConnector talks to the Kiwify API with a static bearer API key.
// There is no token lifecycle, so refresh is a no-op.
type KiwifyConnector struct {
	client  *client
	baseURL string
	creds   KiwifyCredentials
}

// NewKiwifyConnector creates a connector bound to one credential set.
func NewKiwifyConnector(creds KiwifyCredentials, logger *slog.Logger) *KiwifyConnector {
	return &KiwifyConnector{
		client:  newClient(string(entity.PlatformKiwify), logger),
		baseURL: kiwifyBaseURL,
		creds:   creds,
	}
}

// PlatformName returns the official platform name.
func (c *KiwifyConnector) PlatformName() string {
	return string(entity.PlatformKiwify)
}

// GetSales fetches orders in the inclusive [startDate, endDate] window.
func (c *KiwifyConnector) GetSales(ctx context.Context, startDate, endDate time.Time) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("filter[start_date]", startDate.Format(dateLayout))
	query.Set("filter[end_date]", endDate.Format(dateLayout))

	return c.client.get(ctx, c.baseURL+"orders", query, c.authorize, nil)
}

// GetProducts fetches the product catalog.
func (c *KiwifyConnector) GetProducts(ctx context.Context) (json.RawMessage, error) {
	return c.client.get(ctx, c.baseURL+"products", nil, c.authorize, nil)
}

// RefreshCredentials is a no-op: the API key never expires.
func (c *KiwifyConnector) RefreshCredentials(_ context.Context) (bool, error) {
	return true, nil
}

// TestConnection reports whether the credentials work.
func (c *KiwifyConnector) TestConnection(ctx context.Context) bool {
	return c.client.testConnection(ctx, c.GetProducts)
}

func (c *KiwifyConnector) authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+c.creds.APIKey)
	return nil
}

var _ adapter.PlatformConnector = (*KiwifyConnector)(nil)
