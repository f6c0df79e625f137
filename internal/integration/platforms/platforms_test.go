package platforms

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/marketing-manager/backend/internal/domain/entity"
	domainerror "github.com/marketing-manager/backend/internal/domain/error"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestEduzzConnector(t *testing.T) {
	t.Run("sends bearer token and date window", func(t *testing.T) {
		var gotAuth, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, `{"data":[]}`)
		}))
		defer server.Close()

		conn := NewEduzzConnector(EduzzCredentials{AccessToken: "tok-1"}, discardLogger())
		conn.baseURL = server.URL + "/"

		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		body, err := conn.GetSales(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != `{"data":[]}` {
			t.Errorf("unexpected body: %s", body)
		}
		if gotAuth != "Bearer tok-1" {
			t.Errorf("expected bearer header, got %q", gotAuth)
		}
		for _, want := range []string{"start_date=2024-01-01", "end_date=2024-01-31", "per_page=100"} {
			if !containsParam(gotQuery, want) {
				t.Errorf("query %q missing %q", gotQuery, want)
			}
		}
	})

	t.Run("refreshes once on 401 and retries", func(t *testing.T) {
		var salesCalls, tokenCalls int
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/sales", func(w http.ResponseWriter, r *http.Request) {
			salesCalls++
			if r.Header.Get("Authorization") != "Bearer fresh" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			fmt.Fprint(w, `{"data":[{"id":1}]}`)
		})
		mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
			tokenCalls++
			if r.FormValue("grant_type") != "refresh_token" || r.FormValue("client_id") != "key" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			fmt.Fprint(w, `{"access_token":"fresh","refresh_token":"fresh-r","expires_in":3600}`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		conn := NewEduzzConnector(EduzzCredentials{
			APIKey:       "key",
			APISecret:    "secret",
			AccessToken:  "stale",
			RefreshToken: "r1",
		}, discardLogger())
		conn.baseURL = server.URL + "/"

		body, err := conn.GetSales(context.Background(), time.Now(), time.Now())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != `{"data":[{"id":1}]}` {
			t.Errorf("unexpected body: %s", body)
		}
		if salesCalls != 2 {
			t.Errorf("expected 2 sales calls (401 then retry), got %d", salesCalls)
		}
		if tokenCalls != 1 {
			t.Errorf("expected exactly 1 token call, got %d", tokenCalls)
		}
		if conn.creds.AccessToken != "fresh" || conn.creds.RefreshToken != "fresh-r" {
			t.Errorf("credentials not updated: %+v", conn.creds)
		}
	})

	t.Run("second 401 surfaces as auth error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/v1/sales", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"access_token":"still-bad","refresh_token":"r2","expires_in":3600}`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		conn := NewEduzzConnector(EduzzCredentials{AccessToken: "stale", RefreshToken: "r1"}, discardLogger())
		conn.baseURL = server.URL + "/"

		_, err := conn.GetSales(context.Background(), time.Now(), time.Now())
		if !domainerror.IsPlatformAuthError(err) {
			t.Errorf("expected auth error, got %v", err)
		}
	})

	t.Run("non-2xx surfaces as upstream error with status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		conn := NewEduzzConnector(EduzzCredentials{AccessToken: "tok"}, discardLogger())
		conn.baseURL = server.URL + "/"

		_, err := conn.GetProducts(context.Background())
		var pe *domainerror.PlatformError
		if !errors.As(err, &pe) || pe.Kind != domainerror.PlatformErrorUpstream || pe.StatusCode != http.StatusBadGateway {
			t.Errorf("expected upstream error with 502, got %v", err)
		}
	})

	t.Run("connection failure surfaces as network error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close()

		conn := NewEduzzConnector(EduzzCredentials{AccessToken: "tok"}, discardLogger())
		conn.baseURL = server.URL + "/"

		_, err := conn.GetProducts(context.Background())
		if !domainerror.IsPlatformNetworkError(err) {
			t.Errorf("expected network error, got %v", err)
		}
	})
}

func TestHotmartConnector(t *testing.T) {
	t.Run("refresh uses basic auth against the security host", func(t *testing.T) {
		var gotAuth string
		authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"access_token":"new","refresh_token":"new-r","expires_in":600}`)
		}))
		defer authServer.Close()

		conn := NewHotmartConnector(HotmartCredentials{
			APIKey:       "key",
			APISecret:    "secret",
			RefreshToken: "r1",
		}, discardLogger())
		conn.authURL = authServer.URL

		ok, err := conn.RefreshCredentials(context.Background())
		if err != nil || !ok {
			t.Fatalf("unexpected refresh failure: ok=%v err=%v", ok, err)
		}
		// base64("key:secret")
		if gotAuth != "Basic a2V5OnNlY3JldA==" {
			t.Errorf("unexpected basic auth header: %q", gotAuth)
		}
		if conn.creds.AccessToken != "new" {
			t.Errorf("access token not updated: %+v", conn.creds)
		}
	})

	t.Run("refresh with incomplete credentials fails without a request", func(t *testing.T) {
		conn := NewHotmartConnector(HotmartCredentials{APIKey: "key"}, discardLogger())

		ok, err := conn.RefreshCredentials(context.Background())
		if ok || !domainerror.IsPlatformAuthError(err) {
			t.Errorf("expected auth error, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("purchases default to approved status", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, `{"items":[]}`)
		}))
		defer server.Close()

		conn := NewHotmartConnector(HotmartCredentials{AccessToken: "tok"}, discardLogger())
		conn.baseURL = server.URL + "/"

		if _, err := conn.GetPurchases(context.Background(), ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsParam(gotQuery, "transaction_status=APPROVED") {
			t.Errorf("query %q missing approved status", gotQuery)
		}
	})
}

func TestKiwifyConnector(t *testing.T) {
	t.Run("sends static bearer key and filter params", func(t *testing.T) {
		var gotAuth, gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, `{"orders":[]}`)
		}))
		defer server.Close()

		conn := NewKiwifyConnector(KiwifyCredentials{APIKey: "kw-key"}, discardLogger())
		conn.baseURL = server.URL + "/"

		start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
		if _, err := conn.GetSales(context.Background(), start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotAuth != "Bearer kw-key" {
			t.Errorf("unexpected auth header: %q", gotAuth)
		}
		if !containsParam(gotQuery, "filter%5Bstart_date%5D=2024-05-01") {
			t.Errorf("query %q missing start filter", gotQuery)
		}
	})

	t.Run("refresh is a no-op", func(t *testing.T) {
		conn := NewKiwifyConnector(KiwifyCredentials{APIKey: "kw-key"}, discardLogger())
		ok, err := conn.RefreshCredentials(context.Background())
		if !ok || err != nil {
			t.Errorf("expected no-op success, got ok=%v err=%v", ok, err)
		}
	})
}

func TestMonetizzeConnector(t *testing.T) {
	t.Run("signs each request with the daily md5 header", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"dados":[]}`)
		}))
		defer server.Close()

		conn := NewMonetizzeConnector(MonetizzeCredentials{
			Email:    "seller@example.com",
			APIToken: "tok-123",
		}, discardLogger())
		conn.baseURL = server.URL + "/"
		conn.now = func() time.Time {
			return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
		}

		if _, err := conn.GetProducts(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		sum := md5.Sum([]byte("seller@example.com" + "tok-123" + "2024-06-15"))
		want := "BASIC seller@example.com:" + hex.EncodeToString(sum[:])
		if gotAuth != want {
			t.Errorf("auth header mismatch: got %q want %q", gotAuth, want)
		}
	})

	t.Run("uses portuguese date param names", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			fmt.Fprint(w, `{}`)
		}))
		defer server.Close()

		conn := NewMonetizzeConnector(MonetizzeCredentials{Email: "e", APIToken: "t"}, discardLogger())
		conn.baseURL = server.URL + "/"

		start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
		if _, err := conn.GetSales(context.Background(), start, end); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !containsParam(gotQuery, "dataInicio=2024-02-01") || !containsParam(gotQuery, "dataFim=2024-02-29") {
			t.Errorf("query %q missing date params", gotQuery)
		}
	})
}

func TestTestConnection(t *testing.T) {
	t.Run("reports true when the catalog answers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprint(w, `{"products":[]}`)
		}))
		defer server.Close()

		conn := NewKiwifyConnector(KiwifyCredentials{APIKey: "k"}, discardLogger())
		conn.baseURL = server.URL + "/"

		if !conn.TestConnection(context.Background()) {
			t.Error("expected connection test to pass")
		}
	})

	t.Run("swallows failures and reports false", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		conn := NewKiwifyConnector(KiwifyCredentials{APIKey: "k"}, discardLogger())
		conn.baseURL = server.URL + "/"

		if conn.TestConnection(context.Background()) {
			t.Error("expected connection test to fail")
		}
	})
}

func TestNewConnector(t *testing.T) {
	logger := discardLogger()

	for _, platform := range []entity.Platform{
		entity.PlatformEduzz,
		entity.PlatformHotmart,
		entity.PlatformKiwify,
		entity.PlatformMonetizze,
	} {
		conn, err := NewConnector(platform, Credentials{APIKey: "k", Email: "e", APIToken: "t"}, logger)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", platform, err)
		}
		if conn.PlatformName() != string(platform) {
			t.Errorf("expected platform name %s, got %s", platform, conn.PlatformName())
		}
	}

	if _, err := NewConnector("Shopify", Credentials{}, logger); err == nil {
		t.Error("expected error for unsupported platform")
	}
}

func containsParam(query, param string) bool {
	for _, part := range strings.Split(query, "&") {
		if part == param {
			return true
		}
	}
	return false
}

