package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) AccessToken() string { return string(t) }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{API: &config.APIConfig{BaseURL: server.URL, Timeout: time.Second, UserAgent: "storefront-test"}}
	client, err := NewClient(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tokens: staticToken(token),
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresAbsoluteBaseURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(Params{Config: &config.Config{}, Logger: logger})
	assert.Error(t, err)

	_, err = NewClient(Params{Config: &config.Config{API: &config.APIConfig{BaseURL: "localhost"}}, Logger: logger})
	assert.Error(t, err)
}

func TestClient_SendsHeaders(t *testing.T) {
	var got *http.Request
	var body map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"ok":true}}`))
	}, "token-123")

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	raw, err := client.Post(ctx, "/cart/items", map[string]int{"quantity": 2})
	require.NoError(t, err)

	assert.JSONEq(t, `{"data":{"ok":true}}`, string(raw))
	assert.Equal(t, "/api/v1/cart/items", got.URL.Path)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "Bearer token-123", got.Header.Get("Authorization"))
	assert.Equal(t, "req-1", got.Header.Get("X-Request-Id"))
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "storefront-test", got.Header.Get("User-Agent"))
	assert.EqualValues(t, 2, body["quantity"])
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}, "")

	_, err := client.Get(context.Background(), "/categories", nil)
	require.NoError(t, err)
}

func TestClient_ErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantCode    string
	}{
		{name: "top-level message", status: http.StatusConflict, body: `{"message":"Out of stock","code":"STOCK"}`, wantMessage: "Out of stock", wantCode: "STOCK"},
		{name: "nested error object", status: http.StatusBadRequest, body: `{"error":{"message":"Bad email","code":"EMAIL"}}`, wantMessage: "Bad email", wantCode: "EMAIL"},
		{name: "error string", status: http.StatusUnauthorized, body: `{"error":"Token expired"}`, wantMessage: "Token expired", wantCode: "API_ERROR"},
		{name: "empty body uses status text", status: http.StatusNotFound, body: ``, wantMessage: "Not Found", wantCode: "API_ERROR"},
		{name: "non json body", status: http.StatusBadGateway, body: `<html>oops</html>`, wantMessage: "Bad Gateway", wantCode: "API_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "")

			_, err := client.Get(context.Background(), "/cart", nil)
			require.Error(t, err)

			apiErr, ok := errors.AsType[*domainerrors.APIError](err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.HTTPCode())
			assert.Equal(t, tt.wantMessage, apiErr.Message())
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode())
			assert.Equal(t, tt.wantMessage, domainerrors.Message(err))
		})
	}
}

func TestClient_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "/auth/me", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "Request was cancelled", domainerrors.Message(err))
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(Params{
		Config: &config.Config{API: &config.APIConfig{BaseURL: baseURL, Timeout: time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/cart", nil)
	require.Error(t, err)

	netErr, ok := errors.AsType[*domainerrors.NetworkError](err)
	require.True(t, ok)
	assert.Equal(t, "NETWORK_ERROR", netErr.ErrorCode())
	assert.Equal(t, "Network error, please check your connection", domainerrors.Message(err))
}
