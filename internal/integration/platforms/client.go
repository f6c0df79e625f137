// Package platforms implements the commerce-platform connectors. Each
// connector talks to one vendor API on behalf of one user and maps transport
// failures onto domain PlatformError values.
package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

const (
	defaultTimeout = 15 * time.Second
	dateLayout     = "2006-01-02"
)

// client is the shared HTTP base for every connector. Authorization is
// delegated per request since each platform signs differently.
type client struct {
	platform string
	http     *http.Client
	logger   *slog.Logger
}

func newClient(platform string, logger *slog.Logger) *client {
	if logger == nil {
		logger = slog.Default()
	}
	return &client{
		platform: platform,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   logger.With("platform", platform),
	}
}

// get performs an authorized GET. On a 401 it runs refresh exactly once and
// retries; a second 401 surfaces as an auth error. refresh may be nil for
// platforms without renewable credentials.
func (c *client) get(
	ctx context.Context,
	rawURL string,
	query url.Values,
	authorize func(*http.Request) error,
	refresh func(context.Context) (bool, error),
) (json.RawMessage, error) {
	body, status, err := c.doOnce(ctx, rawURL, query, authorize)
	if err != nil {
		return nil, err
	}
	if status == http.StatusUnauthorized && refresh != nil {
		c.logger.Warn("credentials rejected, refreshing")
		ok, refreshErr := refresh(ctx)
		if refreshErr != nil || !ok {
			return nil, domainerror.NewPlatformError(
				domainerror.PlatformErrorAuth,
				c.platform,
				status,
				"credential refresh failed",
				refreshErr,
			)
		}
		body, status, err = c.doOnce(ctx, rawURL, query, authorize)
		if err != nil {
			return nil, err
		}
	}
	return c.checkStatus(body, status)
}

// postForm performs a form-encoded POST, used by the OAuth token endpoints.
// No refresh-retry happens here: a rejected refresh is terminal.
func (c *client) postForm(
	ctx context.Context,
	rawURL string,
	form url.Values,
	authorize func(*http.Request) error,
) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authorize != nil {
		if err := authorize(req); err != nil {
			return nil, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, domainerror.NewPlatformError(
			domainerror.PlatformErrorNetwork,
			c.platform,
			0,
			"request failed",
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerror.NewPlatformError(
			domainerror.PlatformErrorNetwork,
			c.platform,
			0,
			"failed to read response body",
			err,
		)
	}
	return c.checkStatus(body, resp.StatusCode)
}

func (c *client) doOnce(
	ctx context.Context,
	rawURL string,
	query url.Values,
	authorize func(*http.Request) error,
) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if authorize != nil {
		if err := authorize(req); err != nil {
			return nil, 0, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, domainerror.NewPlatformError(
			domainerror.PlatformErrorNetwork,
			c.platform,
			0,
			"request failed",
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, domainerror.NewPlatformError(
			domainerror.PlatformErrorNetwork,
			c.platform,
			0,
			"failed to read response body",
			err,
		)
	}
	return body, resp.StatusCode, nil
}

func (c *client) checkStatus(body []byte, status int) (json.RawMessage, error) {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, domainerror.NewPlatformError(
			domainerror.PlatformErrorAuth,
			c.platform,
			status,
			"credentials rejected",
			nil,
		)
	case status < 200 || status > 299:
		return nil, domainerror.NewPlatformError(
			domainerror.PlatformErrorUpstream,
			c.platform,
			status,
			fmt.Sprintf("unexpected status %d", status),
			nil,
		)
	}
	return json.RawMessage(body), nil
}

// testConnection is the shared TestConnection body: probe the product
// catalog and report success, logging failures instead of raising them.
func (c *client) testConnection(ctx context.Context, getProducts func(context.Context) (json.RawMessage, error)) bool {
	if _, err := getProducts(ctx); err != nil {
		c.logger.Error("connection test failed", "error", err)
		return false
	}
	return true
}
