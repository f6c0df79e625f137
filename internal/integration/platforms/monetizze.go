package platforms

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

const monetizzeBaseURL = "https://api.monetizze.com.br/2.1/"

// MonetizzeCredentials holds one user's Monetizze email and API token.
type MonetizzeCredentials struct {
	Email    string
	APIToken string
}

// MonetizzeConnector talks to the Monetizze API. Authentication is a
// per-request header derived from md5(email+token+current date), so each
// call is freshly signed and refresh is a no-op.
type MonetizzeConnector struct {
	client  *client
	baseURL string
	creds   MonetizzeCredentials
	now     func() time.Time
}

// NewMonetizzeConnector creates a connector bound to one credential set.
func NewMonetizzeConnector(creds MonetizzeCredentials, logger *slog.Logger) *MonetizzeConnector {
	return &MonetizzeConnector{
		client:  newClient(string(entity.PlatformMonetizze), logger),
		baseURL: monetizzeBaseURL,
		creds:   creds,
		now:     time.Now,
	}
}

// PlatformName returns the official platform name.
func (c *MonetizzeConnector) PlatformName() string {
	return string(entity.PlatformMonetizze)
}

// GetSales fetches transactions in the inclusive [startDate, endDate] window.
func (c *MonetizzeConnector) GetSales(ctx context.Context, startDate, endDate time.Time) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("dataInicio", startDate.Format(dateLayout))
	query.Set("dataFim", endDate.Format(dateLayout))

	return c.client.get(ctx, c.baseURL+"transacoes", query, c.authorize, nil)
}

// GetProducts fetches the product catalog.
func (c *MonetizzeConnector) GetProducts(ctx context.Context) (json.RawMessage, error) {
	return c.client.get(ctx, c.baseURL+"produtos", nil, c.authorize, nil)
}

// GetSubscriptions fetches recurring subscriptions.
func (c *MonetizzeConnector) GetSubscriptions(ctx context.Context) (json.RawMessage, error) {
	return c.client.get(ctx, c.baseURL+"assinaturas", nil, c.authorize, nil)
}

// RefreshCredentials is a no-op: the auth header is recomputed per request.
func (c *MonetizzeConnector) RefreshCredentials(_ context.Context) (bool, error) {
	return true, nil
}

// TestConnection reports whether the credentials work.
func (c *MonetizzeConnector) TestConnection(ctx context.Context) bool {
	return c.client.testConnection(ctx, c.GetProducts)
}

func (c *MonetizzeConnector) authorize(req *http.Request) error {
	req.Header.Set("Authorization", c.authHeader())
	return nil
}

// authHeader builds `BASIC email:md5(email+token+YYYY-MM-DD)` with the
// current date, matching Monetizze's daily-rotating signature.
func (c *MonetizzeConnector) authHeader() string {
	day := c.now().Format(dateLayout)
	sum := md5.Sum([]byte(c.creds.Email + c.creds.APIToken + day))
	return fmt.Sprintf("BASIC %s:%s", c.creds.Email, hex.EncodeToString(sum[:]))
}

var _ adapter.PlatformConnector = (*MonetizzeConnector)(nil)
