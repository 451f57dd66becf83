package lelong

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"lelongwatch/internal/model"
)

// FetchListings walks the configured result pages and returns the parsed
// listings plus fetch progress. Any page-level fetch failure aborts the
// whole scan; the caller must leave the store untouched in that case.
func (c *Client) FetchListings(ctx context.Context) ([]model.Listing, model.ScanProgress, error) {
	start := time.Now()
	baseURL := siteBase(c.searchURL)

	type pageResult struct {
		listings []model.Listing
		skipped  int
		err      error
	}

	results := make([]pageResult, c.pages)

	// Semaphore for bounded concurrency.
	sem := make(chan struct{}, c.concurrency)
	var wg sync.WaitGroup

	for i := 0; i < c.pages; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx].err = ctx.Err()
				return
			}

			body, err := c.fetchPageWithRetry(ctx, idx+1)
			if err != nil {
				results[idx].err = fmt.Errorf("fetch page %d: %w", idx+1, err)
				return
			}

			listings, skipped, err := parsePage(body, baseURL, start, c.logger)
			if err != nil {
				results[idx].err = fmt.Errorf("parse page %d: %w", idx+1, err)
				return
			}
			results[idx] = pageResult{listings: listings, skipped: skipped}
		}(i)
	}

	wg.Wait()

	var (
		all        []model.Listing
		skipped    int
		duplicates int
		seen       = make(map[string]bool)
	)

	for _, r := range results {
		if r.err != nil {
			return nil, model.ScanProgress{}, r.err
		}
		skipped += r.skipped
		for _, l := range r.listings {
			if seen[l.ID] {
				duplicates++
				continue
			}
			seen[l.ID] = true
			all = append(all, l)
		}
	}

	progress := model.ScanProgress{
		PagesCompleted:      c.pages,
		TotalPages:          c.pages,
		PropertiesExtracted: len(all),
		DuplicatesSkipped:   duplicates,
		CoveragePercentage:  100,
	}
	if total := len(all) + duplicates + skipped; total > 0 {
		progress.SuccessRate = float64(len(all)+duplicates) / float64(total) * 100
	}

	c.logger.Info("scan fetch complete",
		"pages", c.pages,
		"listings", len(all),
		"skipped", skipped,
		"duplicates", duplicates,
		"duration", time.Since(start),
	)

	return all, progress, nil
}

// siteBase reduces the search URL to scheme://host for resolving relative
// detail links.
func siteBase(searchURL string) string {
	u, err := url.Parse(searchURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return searchURL
	}
	return u.Scheme + "://" + u.Host
}
