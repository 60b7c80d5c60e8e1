// Package firefly is a small client for the Firefly III REST API.
package firefly

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/ffly/internal/logger"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	DefaultTimeout = 10 * time.Second
	apiPrefix      = "/api/v1"
	traceHeader    = "X-Trace-Id"
)

type Config struct {
	URL     string
	Token   string
	Timeout time.Duration
	// RateLimit caps outgoing requests per second. Zero disables pacing.
	RateLimit float64
}

type Client struct {
	baseURL *url.URL
	http    *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
	now     func() time.Time
}

// NewClient validates cfg and returns a client that attaches the bearer
// token to every request.
func NewClient(cfg Config, log *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" || strings.TrimSpace(cfg.Token) == "" {
		return nil, ErrNotConfigured
	}

	base, err := BaseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if log == nil {
		log = slog.Default()
	}

	token := &oauth2.Token{
		AccessToken: strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(cfg.Token), "Bearer ")),
		TokenType:   "Bearer",
	}

	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(token),
				Base:   http.DefaultTransport,
			},
		},
		logger: log.With(logger.FieldComponent, "firefly"),
		now:    time.Now,
	}

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}

	return c, nil
}

// BaseURL normalizes a user-entered server address. Both the bare instance
// URL and the full ".../api/v1" form are accepted.
func BaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: missing host", raw)
	}

	path := strings.TrimRight(u.Path, "/")
	if !strings.HasSuffix(path, apiPrefix) {
		path += apiPrefix
	}
	u.Path = path
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	traceID := uuid.NewString()
	req.Header.Set(traceHeader, traceID)
	log := c.logger.With(logger.FieldMethod, method, logger.FieldPath, u.Path, logger.FieldTraceID, traceID)

	start := c.now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("request failed", logger.FieldError, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug("request done", logger.FieldStatus, resp.StatusCode, "elapsed", c.now().Sub(start))

	if resp.StatusCode == http.StatusUnauthorized {
		log.Warn("unauthorized access to Firefly III")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp)
		log.Error("request rejected", logger.FieldStatus, apiErr.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("decode failed", logger.FieldError, err)
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	return q
}
