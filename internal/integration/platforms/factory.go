package platforms

import (
	"fmt"
	"log/slog"

	"github.com/marketing-manager/backend/internal/application/adapter"
	"github.com/marketing-manager/backend/internal/domain/entity"
)

// Credentials is the superset of every platform's credential fields. Each
// connector picks the fields it needs.
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	RefreshToken string
	Email        string
	APIToken     string
}

// NewConnector builds the connector for a platform name. Unknown platforms
// fail: there is no generic fallback connector.
func NewConnector(platform entity.Platform, creds Credentials, logger *slog.Logger) (adapter.PlatformConnector, error) {
	switch platform {
	case entity.PlatformEduzz:
		return NewEduzzConnector(EduzzCredentials{
			APIKey:       creds.APIKey,
			APISecret:    creds.APISecret,
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
		}, logger), nil
	case entity.PlatformHotmart:
		return NewHotmartConnector(HotmartCredentials{
			APIKey:       creds.APIKey,
			APISecret:    creds.APISecret,
			AccessToken:  creds.AccessToken,
			RefreshToken: creds.RefreshToken,
		}, logger), nil
	case entity.PlatformKiwify:
		return NewKiwifyConnector(KiwifyCredentials{
			APIKey: creds.APIKey,
		}, logger), nil
	case entity.PlatformMonetizze:
		return NewMonetizzeConnector(MonetizzeCredentials{
			Email:    creds.Email,
			APIToken: creds.APIToken,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", platform)
	}
}
