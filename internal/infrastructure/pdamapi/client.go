// Package pdamapi is the typed REST client for the external PDAM billing API.
package pdamapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdam/billing-console/internal/api/metrics"
	"github.com/pdam/billing-console/internal/core/domain"
	"github.com/pdam/billing-console/internal/core/ports"
)

const (
	headerAppKey = "APP-KEY"
	outcomeOK    = "ok"
)

// Config captures the settings for reaching the API.
type Config struct {
	BaseURL  string
	AppKey   string
	AuthPath string
	// Timeout of zero means no client-side timeout.
	Timeout time.Duration
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// Client implements ports.PDAMClient over HTTP+JSON.
type Client struct {
	baseURL  string
	appKey   string
	authPath string
	http     *http.Client
	log      zerolog.Logger
}

var _ ports.PDAMClient = (*Client)(nil)

// NewClient returns a Client for cfg.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	authPath := cfg.AuthPath
	if authPath == "" {
		authPath = "/auth"
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		appKey:   cfg.AppKey,
		authPath: authPath,
		http:     hc,
		log:      log,
	}
}

// envelope is the API's canonical response wrapper.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
	Count   *int   `json:"count,omitempty"`
	Token   string `json:"token,omitempty"`
}

// request describes one call. route is the path template used for metrics.
type request struct {
	method string
	route  string
	path   string
	creds  ports.Credentials
	body   any
}

func (r request) endpoint() string {
	return r.method + " " + r.route
}

// call performs req and decodes the envelope into T. Any non-2xx status is
// returned as a *domain.APIError; network and decode failures are tagged as
// transport errors.
func call[T any](ctx context.Context, c *Client, req request) (envelope[T], error) {
	var env envelope[T]
	start := time.Now()
	outcome := outcomeOK
	defer func() {
		metrics.UpstreamRequestsTotal.WithLabelValues(req.endpoint(), outcome).Inc()
		metrics.UpstreamRequestDuration.WithLabelValues(req.endpoint()).Observe(time.Since(start).Seconds())
	}()

	fail := func(err *domain.APIError) (envelope[T], error) {
		outcome = string(err.Kind)
		ev := c.log.Warn()
		if err.Kind == domain.KindTransport {
			ev = c.log.Error()
		}
		ev.Err(err).Str("endpoint", req.endpoint()).Int("status", err.Status).Msg("pdam api call failed")
		return env, err
	}

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return fail(domain.NewTransportError(err))
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fail(domain.NewTransportError(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(domain.NewTransportError(fmt.Errorf("read body: %w", err)))
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if len(bytes.TrimSpace(raw)) == 0 {
		if ok {
			return env, nil
		}
		return fail(domain.NewStatusError(resp.StatusCode, ""))
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return fail(domain.NewTransportError(fmt.Errorf("decode %s response (status %d): %w", req.endpoint(), resp.StatusCode, err)))
	}
	if !ok {
		return fail(domain.NewStatusError(resp.StatusCode, env.Message))
	}

	c.log.Debug().Str("endpoint", req.endpoint()).Int("status", resp.StatusCode).Msg("pdam api call")
	return env, nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(headerAppKey, c.appKey)
	if req.creds.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.creds.Token)
	}
	return httpReq, nil
}

// errNilData is returned when a "me" endpoint succeeds without a record.
var errNilData = errors.New("response has no data")

func resourcePath(collection string, id int64) string {
	return fmt.Sprintf("%s/%d", collection, id)
}
