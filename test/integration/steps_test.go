//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/marketing-manager/backend/config"
	"github.com/marketing-manager/backend/internal/infra/dependency"
	"github.com/marketing-manager/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// testContext holds the per-scenario state.
type testContext struct {
	server       *httptest.Server
	client       *http.Client
	headers      map[string]string
	vars         map[string]string
	accessToken  string
	refreshToken string
	status       int
	body         []byte
}

type contextKey struct{}

func getTestContext(ctx context.Context) *testContext {
	tc, _ := ctx.Value(contextKey{}).(*testContext)
	return tc
}

func setTestContext(ctx context.Context, tc *testContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario boots a fresh API on the shared in-memory database and
// registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.OpenDB()
		if err := mock.ResetDB(db); err != nil {
			return ctx, err
		}

		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			JWT: config.JWTConfig{
				Secret:             testJWTSecret,
				AccessTokenExpiry:  15 * time.Minute,
				RefreshTokenExpiry: 7 * 24 * time.Hour,
			},
			Metrics: config.MetricsConfig{CostResolution: "live_lookup"},
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		injector := dependency.NewInjector(cfg, db, logger)
		engine := injector.Router.Setup("test")

		tc := &testContext{
			server:  httptest.NewServer(engine),
			client:  &http.Client{Timeout: 10 * time.Second},
			headers: make(map[string]string),
			vars:    make(map[string]string),
		}

		return setTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := getTestContext(ctx); tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^a registered user "([^"]*)" with password "([^"]*)"$`, aRegisteredUserWithPassword)
	ctx.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, iAmLoggedInAsWithPassword)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := getTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func aRegisteredUserWithPassword(ctx context.Context, username, password string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	status, _, err := tc.do("POST", "/api/v1/auth/register", payload, "")
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("failed to register user %q: status %d", username, status)
	}
	return nil
}

func iAmLoggedInAsWithPassword(ctx context.Context, username, password string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"username": %q, "password": %q}`, username, password)
	status, body, err := tc.do("POST", "/api/v1/auth/login", payload, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("failed to log in as %q: status %d, body %s", username, status, body)
	}

	var resp struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	tc.accessToken = resp.AccessToken
	tc.refreshToken = resp.RefreshToken
	tc.vars["refresh_token"] = resp.RefreshToken
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	status, body, err := tc.do(method, tc.substitute(endpoint), "", tc.accessToken)
	if err != nil {
		return err
	}
	tc.status = status
	tc.body = body
	return nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, payload *godog.DocString) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	status, body, err := tc.do(method, tc.substitute(endpoint), tc.substitute(payload.Content), tc.accessToken)
	if err != nil {
		return err
	}
	tc.status = status
	tc.body = body
	return nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	tc.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.status != expected {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expected, tc.status, tc.body)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := getTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.body), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, tc.body)
	}
	return nil
}

// Helpers

// do sends one request and returns the status and body.
func (tc *testContext) do(method, endpoint, payload, token string) (int, []byte, error) {
	var reader io.Reader
	if payload != "" {
		reader = bytes.NewBufferString(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.headers {
		req.Header.Set(key, value)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, body, nil
}

// substitute replaces {name} placeholders with previously stored values.
func (tc *testContext) substitute(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// lookupField resolves a dotted path such as "user.username" in the last
// response body.
func (tc *testContext) lookupField(field string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(field, ".") {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object in response %s", field, tc.body)
		}
		current, ok = obj[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response %s", field, tc.body)
		}
	}
	return current, nil
}
