package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

const eduzzBaseURL = "https://api.eduzz.com/"

// EduzzCredentials holds one user's Eduzz OAuth2 credential set.
type EduzzCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// EduzzConnector talks to the Eduzz API using OAuth2 bearer tokens.
type EduzzConnector struct {
	client  *client
	baseURL string
	creds   EduzzCredentials
}

// NewEduzzConnector creates a connector bound to one credential set.
func NewEduzzConnector(creds EduzzCredentials, logger *slog.Logger) *EduzzConnector {
	return &EduzzConnector{
		client:  newClient(string(entity.PlatformEduzz), logger),
		baseURL: eduzzBaseURL,
		creds:   creds,
	}
}

// PlatformName returns the official platform name.
func (c *EduzzConnector) PlatformName() string {
	return string(entity.PlatformEduzz)
}

// GetSales fetches sales in the inclusive [startDate, endDate] window.
func (c *EduzzConnector) GetSales(ctx context.Context, startDate, endDate time.Time) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("start_date", startDate.Format(dateLayout))
	query.Set("end_date", endDate.Format(dateLayout))
	query.Set("page", "1")
	query.Set("per_page", strconv.Itoa(100))

	return c.client.get(ctx, c.baseURL+"v1/sales", query, c.authorize, c.RefreshCredentials)
}

// GetProducts fetches the product catalog.
func (c *EduzzConnector) GetProducts(ctx context.Context) (json.RawMessage, error) {
	return c.client.get(ctx, c.baseURL+"v1/products", nil, c.authorize, c.RefreshCredentials)
}

// RefreshCredentials exchanges the refresh token for a new token pair at the
// oauth/token endpoint.
func (c *EduzzConnector) RefreshCredentials(ctx context.Context) (bool, error) {
	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.creds.RefreshToken)
	form.Set("client_id", c.creds.APIKey)
	form.Set("client_secret", c.creds.APISecret)

	body, err := c.client.postForm(ctx, c.baseURL+"oauth/token", form, nil)
	if err != nil {
		return false, err
	}

	var token struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &token); err != nil {
		return false, fmt.Errorf("failed to decode token response: %w", err)
	}

	c.creds.AccessToken = token.AccessToken
	c.creds.RefreshToken = token.RefreshToken
	c.creds.ExpiresAt = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	return true, nil
}

// TestConnection reports whether the credentials work.
func (c *EduzzConnector) TestConnection(ctx context.Context) bool {
	return c.client.testConnection(ctx, c.GetProducts)
}

func (c *EduzzConnector) authorize(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken)
	return nil
}

var _ adapter.PlatformConnector = (*EduzzConnector)(nil)
