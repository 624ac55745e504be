package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// RequestOption mutates an outgoing request before it enters the pipeline.
type RequestOption func(*http.Request)

// WithBearer supplies an explicit bearer credential, bypassing the
// credential-store read in the request stage. Used by the bootstrap
// verification call.
func WithBearer(token string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// Client is one configured HTTP client for one backend service: a base
// endpoint plus the shared pipeline behavior. The typed service clients
// are thin wrappers over it.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient binds baseURL to httpClient. A nil httpClient falls back to
// http.DefaultClient (no pipeline), which is what the login and refresh
// calls want.
func NewClient(baseURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// Do performs one JSON round trip. body is marshaled when non-nil, out is
// filled from a 2xx response when non-nil. Every failure comes back as a
// *Error carrying its classification.
func (c *Client) Do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("build request: %v", err), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// The pipeline surfaces refresh exhaustion as a typed error
		// wrapped inside the url.Error; pass it through unchanged.
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return apiErr
		}
		c.logger.Debug().Err(err).Str("method", method).Str("url", c.baseURL+path).Msg("request failed")
		return transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.errorFromResponse(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "malformed response body", Err: err}
	}
	return nil
}

// errorFromResponse extracts the server's error message when the payload
// carries one, in the services' {"error": "..."} shape.
func (c *Client) errorFromResponse(resp *http.Response) *Error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	message := http.StatusText(resp.StatusCode)
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		message = payload.Error
	}

	kind := KindServer
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		kind = KindAuthorization
	}
	return &Error{Kind: kind, Status: resp.StatusCode, Message: message}
}
