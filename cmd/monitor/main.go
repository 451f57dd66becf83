package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lelongwatch/internal/config"
	"lelongwatch/internal/lelong"
	"lelongwatch/internal/notify"
	"lelongwatch/internal/runner"
	"lelongwatch/internal/store"
	"lelongwatch/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/monitor.yaml", "path to config file")
	flag.Parse()

	// Credentials usually live in a local .env during development.
	_ = godotenv.Load()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting monitor",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"instance_id", cfg.Instance.ID,
		"source_url", cfg.Source.URL,
		"pages", cfg.Source.Pages,
		"telegram_enabled", cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "",
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	st, err := store.New(cfg.Store.DataDir, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}

	fetcher := lelong.NewClient(
		cfg.Source.URL,
		lelong.WithTimeout(cfg.Source.Timeout),
		lelong.WithRetries(cfg.Source.MaxRetries, cfg.Source.RetryBackoff),
		lelong.WithUserAgent(cfg.Source.UserAgent),
		lelong.WithPages(cfg.Source.Pages),
		lelong.WithConcurrency(cfg.Source.PageConcurrency),
		lelong.WithLogger(logger),
	)

	notifier := notify.NewTelegram(
		cfg.Telegram.APIURL,
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		notify.WithMessageLimit(cfg.Telegram.MessageLimit),
		notify.WithTelegramTimeout(cfg.Telegram.Timeout),
		notify.WithTelegramLogger(logger),
	)

	r := runner.New(runner.Config{
		BenchmarkPSF: cfg.Market.BenchmarkPSF,
		ReportDir:    cfg.Report.Dir,
		MaxNew:       cfg.Report.MaxNew,
		MaxChanges:   cfg.Report.MaxChanges,
	}, fetcher, st, notifier, logger)

	stats, err := r.Run(ctx)
	if err != nil {
		logger.Error("scan failed", "error", err)
		os.Exit(1)
	}

	logger.Info("scan complete",
		"listings", stats.TotalListings,
		"new", stats.NewListings,
		"changed", stats.ChangedProperties,
	)
}
