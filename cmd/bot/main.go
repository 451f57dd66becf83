package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"lelongwatch/internal/bot"
	"lelongwatch/internal/config"
	"lelongwatch/internal/notify"
	"lelongwatch/internal/store"
	"lelongwatch/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/monitor.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting bot",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Telegram.BotToken == "" {
		logger.Error("telegram bot token not configured")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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

	// The HTTP timeout must outlast the long-poll window.
	tg := notify.NewTelegram(
		cfg.Telegram.APIURL,
		cfg.Telegram.BotToken,
		cfg.Telegram.ChatID,
		notify.WithParseMode("HTML"),
		notify.WithMessageLimit(cfg.Telegram.MessageLimit),
		notify.WithTelegramTimeout(cfg.Bot.PollTimeout+5*time.Second),
		notify.WithTelegramLogger(logger),
	)

	b := bot.New(bot.Config{
		PollTimeout:    cfg.Bot.PollTimeout,
		ReloadInterval: cfg.Bot.ReloadInterval,
	}, tg, st, logger)

	if err := b.Run(ctx); err != nil {
		logger.Error("bot failed", "error", err)
		os.Exit(1)
	}
}
