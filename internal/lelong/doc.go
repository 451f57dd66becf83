// Package lelong fetches and parses auction-property listings from the
// Lelong search results pages.
//
// The Fetcher:
//   - Walks the configured number of result pages with bounded concurrency
//   - Retries retryable HTTP failures (5xx, 429) with jittered backoff
//   - Skips individual malformed listing cards with a warning
//   - Deduplicates listings by derived property id
package lelong
