package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lelongwatch/internal/differ"
	"lelongwatch/internal/model"
	"lelongwatch/internal/notify"
	"lelongwatch/internal/report"
	"lelongwatch/internal/store"
)

// Fetcher provides the current listings.
type Fetcher interface {
	FetchListings(ctx context.Context) ([]model.Listing, model.ScanProgress, error)
}

// Notifier delivers chat messages.
type Notifier interface {
	Enabled() bool
	SendMessage(ctx context.Context, text string) error
}

// Config holds runner settings.
type Config struct {
	BenchmarkPSF float64
	ReportDir    string
	MaxNew       int
	MaxChanges   int
}

// Runner executes one scan.
type Runner struct {
	cfg      Config
	fetcher  Fetcher
	store    *store.Store
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Runner.
func New(cfg Config, fetcher Fetcher, st *store.Store, notifier Notifier, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:      cfg,
		fetcher:  fetcher,
		store:    st,
		notifier: notifier,
		logger:   logger,
	}
}

// Run executes one fetch/diff/persist/notify cycle and returns the scan
// statistics.
func (r *Runner) Run(ctx context.Context) (model.ScanStats, error) {
	now := time.Now().UTC()

	db, err := r.store.LoadProperties()
	if err != nil {
		return model.ScanStats{}, fmt.Errorf("load properties: %w", err)
	}
	r.logger.Info("database loaded", "properties", len(db))

	current, progress, err := r.fetcher.FetchListings(ctx)
	if err != nil {
		// Store stays untouched; next scheduled run retries.
		r.logger.Error("fetch failed", "error", err)
		r.sendBestEffort(ctx, notify.FailureAlert(now, err))
		return model.ScanStats{}, fmt.Errorf("fetch listings: %w", err)
	}

	if len(current) == 0 {
		r.logger.Warn("no listings found, store untouched")
		r.sendBestEffort(ctx, notify.NoListingsNotice(len(db)))
		return model.ScanStats{Date: now, TotalTracked: len(db)}, nil
	}

	result := differ.Diff(current, db, now)
	r.logger.Info("diff complete",
		"listings", len(current),
		"new", len(result.New),
		"changed", len(result.Changed),
		"unchanged", result.Unchanged,
	)

	stats := model.ScanStats{
		Date:              now,
		TotalListings:     len(current),
		TotalTracked:      len(db),
		NewListings:       len(result.New),
		ChangedProperties: len(result.Changed),
	}
	for _, l := range result.New {
		stats.NewListingIDs = append(stats.NewListingIDs, l.ID)
	}

	// Persist the database first, then the change log, then the scan
	// metadata: a crash mid-persist never records a scan whose events
	// were lost.
	if err := r.store.SaveProperties(db); err != nil {
		return stats, fmt.Errorf("save properties: %w", err)
	}
	if err := r.store.AppendChanges(result.Events); err != nil {
		return stats, fmt.Errorf("append changes: %w", err)
	}
	if err := r.store.SaveStats(stats); err != nil {
		return stats, fmt.Errorf("save stats: %w", err)
	}
	if err := r.store.SaveProgress(progress); err != nil {
		return stats, fmt.Errorf("save progress: %w", err)
	}

	if r.cfg.ReportDir != "" {
		if path, err := report.Write(r.cfg.ReportDir, now, stats, result.New, result.Changed); err != nil {
			r.logger.Warn("report write failed", "error", err)
		} else {
			r.logger.Info("report written", "path", path)
		}
	}

	summary := notify.DailySummary(notify.SummaryData{
		Now:          now,
		Current:      current,
		New:          result.New,
		Changed:      result.Changed,
		TotalTracked: len(db),
		BenchmarkPSF: r.cfg.BenchmarkPSF,
		MaxNew:       r.cfg.MaxNew,
		MaxChanges:   r.cfg.MaxChanges,
	})
	r.sendBestEffort(ctx, summary)

	return stats, nil
}

// sendBestEffort delivers a notification if configured; failures are
// logged, never fatal.
func (r *Runner) sendBestEffort(ctx context.Context, text string) {
	if r.notifier == nil || !r.notifier.Enabled() {
		r.logger.Warn("telegram not configured, skipping notification")
		return
	}
	if err := r.notifier.SendMessage(ctx, text); err != nil {
		r.logger.Warn("notification delivery failed", "error", err)
	}
}
