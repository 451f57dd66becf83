package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *MonitorConfig) Validate() error {
	if c.Instance.ID == "" {
		return errors.New("instance.id is required")
	}

	if c.Source.URL == "" {
		return errors.New("source.url is required")
	}
	if c.Source.Pages < 1 {
		return errors.New("source.pages must be >= 1")
	}
	if c.Source.PageConcurrency < 1 {
		return errors.New("source.page_concurrency must be >= 1")
	}
	if c.Source.MaxRetries < 0 {
		return errors.New("source.max_retries must be >= 0")
	}

	if c.Store.DataDir == "" {
		return errors.New("store.data_dir is required")
	}

	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return errors.New("telegram.chat_id is required when telegram.bot_token is set")
	}
	if c.Telegram.MessageLimit < 1 || c.Telegram.MessageLimit > 4096 {
		return fmt.Errorf("telegram.message_limit must be between 1 and 4096, got %d", c.Telegram.MessageLimit)
	}

	if c.Market.BenchmarkPSF <= 0 {
		return fmt.Errorf("market.benchmark_psf must be > 0, got %v", c.Market.BenchmarkPSF)
	}

	if c.Report.MaxNew < 1 {
		return errors.New("report.max_new must be >= 1")
	}
	if c.Report.MaxChanges < 1 {
		return errors.New("report.max_changes must be >= 1")
	}

	return nil
}
