package lelong

import (
	"log/slog"
	"net/http"
	"time"
)

// Client fetches listing pages from the source site.
type Client struct {
	searchURL  string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries   int
	retryBackoff time.Duration

	pages       int
	concurrency int
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new listing-source client.
func NewClient(searchURL string, opts ...ClientOption) *Client {
	c := &Client{
		searchURL: searchURL,
		userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
		pages:        1,
		concurrency:  4,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithPages sets how many result pages one scan walks.
func WithPages(pages int) ClientOption {
	return func(c *Client) {
		c.pages = pages
	}
}

// WithConcurrency sets the maximum concurrent page fetches.
func WithConcurrency(n int) ClientOption {
	return func(c *Client) {
		c.concurrency = n
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
