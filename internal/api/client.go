// Package api is the typed client for the remote job/profile backend.
// Every method issues exactly one HTTP call, bounds it with the
// caller's context, and converts failures into StandardError values so
// nothing untyped escapes to callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"jobswipe-client/internal/common/config"
	"jobswipe-client/internal/common/errors"
	"jobswipe-client/internal/common/http"
	"jobswipe-client/internal/common/logger"
	"jobswipe-client/internal/common/metrics"
)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	uploadClient   *http.Client
	profileTimeout time.Duration
	logger         logger.Logger
	errs           *errors.Handler
}

func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	l := log.WithFields(map[string]interface{}{"component": "api"})
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:     http.NewClient(config.GetDuration(cfg.Timeout)),
		uploadClient:   http.NewClient(config.GetDuration(cfg.UploadTimeout)),
		profileTimeout: config.GetDuration(cfg.ProfileTimeout),
		logger:         l,
		errs:           errors.NewHandler(l),
	}
}

// ProfileTimeout is the bound for profile loads and status checks.
func (c *Client) ProfileTimeout() time.Duration {
	return c.profileTimeout
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// errorBody is the structured non-2xx payload the backend sends.
type errorBody struct {
	Error string `json:"error"`
}

// getJSON issues one GET and decodes a 2xx body into out.
func (c *Client) getJSON(ctx context.Context, label, rawURL string, out interface{}) error {
	req, err := nethttp.NewRequest(nethttp.MethodGet, rawURL, nil)
	if err != nil {
		return c.errs.Report(err, label)
	}
	req.Header.Set("Accept", "application/json")

	return c.roundTrip(ctx, label, req, c.httpClient, out)
}

// postJSON issues one POST with a JSON body and decodes a 2xx body
// into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, label, rawURL string, body interface{}, out interface{}) error {
	payload, err := c.marshalBody(label, body)
	if err != nil {
		return err
	}

	req, err := nethttp.NewRequest(nethttp.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return c.errs.Report(err, label)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.roundTrip(ctx, label, req, c.httpClient, out)
}

func (c *Client) marshalBody(label string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, c.errs.Report(err, label)
	}
	return payload, nil
}

// postRaw issues one POST and hands back the undecoded 2xx body so the
// caller can schema-check it.
func (c *Client) postRaw(ctx context.Context, label, rawURL string, payload []byte) ([]byte, error) {
	req, err := nethttp.NewRequest(nethttp.MethodPost, rawURL, bytes.NewReader(payload))
	if err != nil {
		return nil, c.errs.Report(err, label)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.roundTripRaw(ctx, label, req, c.httpClient)
}

func (c *Client) roundTrip(ctx context.Context, label string, req *nethttp.Request, client *http.Client, out interface{}) error {
	raw, err := c.roundTripRaw(ctx, label, req, client)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return c.decode(label, raw, out)
}

// roundTripRaw performs the exchange and returns the 2xx body bytes.
func (c *Client) roundTripRaw(ctx context.Context, label string, req *nethttp.Request, client *http.Client) ([]byte, error) {
	start := time.Now()
	resp, err := client.DoWithContext(ctx, req)
	metrics.APIRequestDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, c.errs.Report(err, label)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.errs.Report(err, label)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.serverError(label, resp.StatusCode, raw)
	}
	return raw, nil
}

func (c *Client) decode(label string, raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Error("undecodable response body", map[string]interface{}{
			"endpoint": label,
			"error":    err.Error(),
		})
		return errors.NewMalformedResponseError(fmt.Sprintf("endpoint: %s, error: %s", label, err.Error()))
	}
	return nil
}

// serverError surfaces the backend's JSON error field verbatim when
// present, otherwise a status-code message.
func (c *Client) serverError(label string, status int, raw []byte) *errors.StandardError {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		c.logger.Warn("server rejected request", map[string]interface{}{
			"endpoint": label,
			"status":   status,
			"error":    body.Error,
		})
		return errors.NewServerError(body.Error)
	}
	c.logger.Warn("server rejected request", map[string]interface{}{
		"endpoint": label,
		"status":   status,
	})
	return errors.NewServerError(fmt.Sprintf("Server returned %d status", status))
}
