// Package rtt is the gateway to the Realtime Trains REST API. It issues
// authenticated GETs and returns decoded records or a classified error;
// retry and circuit-breaking live in the underlying resilient client, not
// in callers.
package rtt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/railscout/railscout/internal/provider/resilience"
	"github.com/railscout/railscout/internal/telemetry"
)

const (
	// ProviderName identifies this upstream for circuit breaker naming.
	ProviderName = "rtt"

	// DefaultBaseURL is the Realtime Trains API base URL.
	DefaultBaseURL = "https://api.rtt.io/api/v1"

	userAgent = "railscout/1.0"
)

// ClientConfig holds configuration for the Realtime Trains client.
type ClientConfig struct {
	// Username and Password are the rttapi HTTP basic auth credentials
	// (required).
	Username string
	Password string

	// BaseURL overrides the API base URL (optional, used in tests).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Metrics records per-request upstream observations (optional).
	Metrics *telemetry.ProviderMetrics

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Realtime Trains API client.
type Client struct {
	username   string
	password   string
	baseURL    string
	httpClient *resilience.Client
	metrics    *telemetry.ProviderMetrics
	logger     zerolog.Logger
}

// NewClient creates a new Realtime Trains client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		username:   cfg.Username,
		password:   cfg.Password,
		baseURL:    baseURL,
		httpClient: httpClient,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Search fetches the station board for a CRS code on a service date
// (YYYY/MM/DD). A non-empty toCRS narrows results to services calling at
// that destination; from filters to services at or after an HHMM time.
func (c *Client) Search(ctx context.Context, crs, toCRS, date, from string) (*SearchResponse, error) {
	path := fmt.Sprintf("/json/search/%s/%s", crs, date)
	if toCRS != "" {
		// The /to/ segment must precede the date in the upstream URL scheme.
		path = fmt.Sprintf("/json/search/%s/to/%s/%s", crs, toCRS, date)
	}
	if from != "" {
		path += "?from=" + from
	}

	var out SearchResponse
	if err := c.getJSON(ctx, "search", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Service fetches the full stop-by-stop detail of one service UID on a
// service date (YYYY/MM/DD).
func (c *Client) Service(ctx context.Context, uid, date string) (*ServiceResponse, error) {
	path := fmt.Sprintf("/json/service/%s/%s", uid, date)

	var out ServiceResponse
	if err := c.getJSON(ctx, "service", path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON executes one authenticated GET and decodes the body into out.
// Each call is one metrics observation, retries included.
func (c *Client) getJSON(ctx context.Context, operation, path string, out any) (err error) {
	if c.metrics != nil {
		start := time.Now()
		defer func() {
			c.metrics.RecordRequest(ctx, ProviderName, operation, time.Since(start), err)
		}()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		c.logger.Debug().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("upstream request failed")
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// classifyStatus maps upstream HTTP statuses onto the package error
// taxonomy. 2xx is success.
func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusUnauthorized:
		return ErrAuthFailed
	case code == http.StatusForbidden:
		return ErrForbidden
	default:
		return &StatusError{Code: code}
	}
}
