package platforms

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

const (
	hotmartBaseURL = "https://api-developers.hotmart.com/v1/"
	hotmartAuthURL = "https://api-sec-vlc.hotmart.com/security/oauth/token"
)

// HotmartCredentials holds one user's Hotmart OAuth2 credential set.
type HotmartCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// HotmartConnector talks to the Hotmart developers API. Token refresh goes
// through a separate security host authenticated with Basic key:secret.
type HotmartConnector struct {
	client  *client
	baseURL string
	authURL string
	creds   HotmartCredentials
}

// NewHotmartConnector creates a connector bound to one credential set.
func NewHotmartConnector(creds HotmartCredentials, logger *slog.Logger) *HotmartConnector {
	return &HotmartConnector{
		client:  newClient(string(entity.PlatformHotmart), logger),
		baseURL: hotmartBaseURL,
		authURL: hotmartAuthURL,
		creds:   creds,
	}
}

// PlatformName returns the official platform name.
func (c *HotmartConnector) PlatformName() string {
	return string(entity.PlatformHotmart)
}

// GetSales fetches the sales history in the inclusive [startDate, endDate] window.
func (c *HotmartConnector) GetSales(ctx context.Context, startDate, endDate time.Time) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("start_date", startDate.Format(dateLayout))
	query.Set("end_date", endDate.Format(dateLayout))
	query.Set("max_results", "1000")

	return c.client.get(ctx, c.baseURL+"sales/history", query, c.authorize, c.RefreshCredentials)
}

// GetProducts fetches the product catalog.
func (c *HotmartConnector) GetProducts(ctx context.Context) (json.RawMessage, error) {
	return c.client.get(ctx, c.baseURL+"products", nil, c.authorize, c.RefreshCredentials)
}

// GetPurchases fetches purchases filtered by transaction status, APPROVED
// by default.
func (c *HotmartConnector) GetPurchases(ctx context.Context, transactionStatus string) (json.RawMessage, error) {
	if transactionStatus == "" {
		transactionStatus = "APPROVED"
	}
	query := url.Values{}
	query.Set("transaction_status", transactionStatus)

	return c.client.get(ctx, c.baseURL+"purchases", query, c.authorize, c.RefreshCredentials)
}

// RefreshCredentials exchanges the refresh token for a new token pair.
func (c *HotmartConnector) RefreshCredentials(ctx context.Context) (bool, error) {
	if c.creds.APIKey == "" || c.creds.APISecret == "" || c.creds.RefreshToken == "" {
		return false, domainerror.NewPlatformError(
			domainerror.PlatformErrorAuth,
			c.PlatformName(),
			0,
			"incomplete credentials for token refresh",
			nil,
		)
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", c.creds.RefreshToken)

	basic := base64.StdEncoding.EncodeToString([]byte(c.creds.APIKey + ":" + c.creds.APISecret))
	authorize := func(req *http.Request) error {
		req.Header.Set("Authorization", "Basic "+basic)
		return nil
	}

	body, err := c.client.postForm(ctx, c.authURL, form, authorize)
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
func (c *HotmartConnector) TestConnection(ctx context.Context) bool {
	return c.client.testConnection(ctx, c.GetProducts)
}

func (c *HotmartConnector) authorize(req *http.Request) error {
	if c.creds.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken)
	}
	return nil
}

var _ adapter.PlatformConnector = (*HotmartConnector)(nil)
