package lelong

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// SourceError represents an HTTP error from the listing source.
type SourceError struct {
	StatusCode int
	URL        string
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("listing source error %d: %s", e.StatusCode, e.URL)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *SourceError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// fetchPage performs a single GET of a result page.
func (c *Client) fetchPage(ctx context.Context, page int) ([]byte, error) {
	pageURL := c.searchURL
	if page > 1 {
		sep := "?"
		if strings.Contains(pageURL, "?") {
			sep = "&"
		}
		pageURL += sep + "page=" + strconv.Itoa(page)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &SourceError{
			StatusCode: resp.StatusCode,
			URL:        pageURL,
		}
	}

	return body, nil
}

// fetchPageWithRetry fetches a page with exponential backoff retry.
func (c *Client) fetchPageWithRetry(ctx context.Context, page int) ([]byte, error) {
	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff/2 + time.Duration(rand.Int63n(int64(backoff)))
			c.logger.Debug("retrying page fetch",
				"attempt", attempt,
				"backoff", jitter,
				"page", page,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		body, err := c.fetchPage(ctx, page)
		if err == nil {
			return body, nil
		}

		lastErr = err

		// Check if error is retryable
		srcErr, ok := err.(*SourceError)
		if !ok || !srcErr.IsRetryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
