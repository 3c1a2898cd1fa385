package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/coachly/mobile/core"
	"github.com/coachly/mobile/storage/kvstore"
)

// Client talks to the coaching backend's REST API. Every request carries
// a request ID and, when a token sits in the device store, a bearer
// Authorization header. Failed requests are reported once; there is no
// retry policy.
type Client struct {
	baseURL string
	http    *http.Client
	kv      kvstore.Store
	logger  core.Logger
}

func NewClient(conf *core.Config, kv kvstore.Store, logger core.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.APIBaseURL, "/"),
		http:    &http.Client{Timeout: conf.RequestTimeout},
		kv:      kv,
		logger:  logger,
	}
}

// errorPayload is the backend's structured error shape.
type errorPayload struct {
	Message string `json:"message"`
}

// do runs one request. Non-2xx responses become Backend errors carrying
// the backend's message verbatim when present, else fallback; failures
// before a response becomes available are Transport errors.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, fallback string) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return core.NewTransportError(fallback, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	c.setAuthorization(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return core.NewTransportError(fallback, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var payload errorPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Message != "" {
			return core.NewBackendError(payload.Message)
		}
		return core.NewBackendError(fallback)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return core.NewBackendError(fallback, errors.Wrap(err, "decoding response body"))
		}
	}
	return nil
}

// setAuthorization attaches the bearer token when one is stored; an
// absent token sends the request unauthenticated.
func (c *Client) setAuthorization(ctx context.Context, req *http.Request) {
	token, err := c.kv.Get(ctx, kvstore.KeyToken)
	if err != nil {
		if !errors.Is(err, kvstore.ErrKeyNotFound) {
			c.logger.Warn("token lookup failed; sending request unauthenticated", "error", err)
		}
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
