// Package api implements the repository gateways on top of the marketplace REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"go.uber.org/fx"
)

const (
	apiPrefix        = "/api/v1"
	maxErrorBodySize = 1 << 20
)

// TokenProvider supplies the access token attached to outgoing requests.
type TokenProvider interface {
	AccessToken() string
}

// Params defines the dependencies of the REST client
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Tokens     TokenProvider
	HTTPClient *http.Client `optional:"true"`
}

// Client issues authenticated JSON requests against the marketplace backend.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	tokens    TokenProvider
	logger    *slog.Logger
}

// NewClient creates the REST client from the api config section.
func NewClient(params Params) (*Client, error) {
	if params.Config.API == nil || strings.TrimSpace(params.Config.API.BaseURL) == "" {
		return nil, errors.New("api.baseURL is required")
	}

	base, err := url.Parse(params.Config.API.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid api.baseURL")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("api.baseURL must be absolute: %s", params.Config.API.BaseURL)
	}

	httpClient := params.HTTPClient
	if httpClient == nil {
		timeout := params.Config.API.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:   strings.TrimRight(base.String(), "/"),
		userAgent: params.Config.API.UserAgent,
		http:      httpClient,
		tokens:    params.Tokens,
		logger:    params.Logger,
	}, nil
}

// Get performs a GET request and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s", method, path)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); errors.Is(ctxErr, context.Canceled) {
			return nil, errors.Wrapf(ctxErr, "%s %s", method, path)
		}

		return nil, domainerrors.NewNetworkError(err, path)
	}
	defer resp.Body.Close()

	logger.Debug("api call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeError(resp, path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewNetworkError(err, path)
	}

	return raw, nil
}

// decodeError turns a non-2xx response into an APIError carrying the backend's message.
func decodeError(resp *http.Response, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	if len(bytes.TrimSpace(raw)) == 0 {
		return domainerrors.NewAPIError(resp.StatusCode, "", "", path)
	}

	var body domainerrors.BackendErrorBody
	if json.Unmarshal(raw, &body) == nil {
		return domainerrors.NewAPIError(resp.StatusCode, body.BusinessCode(), body.Text(), path)
	}

	// {"error": "text"} does not fit BackendErrorBody.
	var loose map[string]any
	if json.Unmarshal(raw, &loose) == nil {
		for _, key := range []string{"message", "error"} {
			if text, ok := loose[key].(string); ok && text != "" {
				return domainerrors.NewAPIError(resp.StatusCode, "", text, path)
			}
		}
	}

	return domainerrors.NewAPIError(resp.StatusCode, "", "", path)
}
