package config

import "time"

// MonitorConfig is the root configuration for a monitor instance.
type MonitorConfig struct {
	Instance InstanceConfig `yaml:"instance"`
	Source   SourceConfig   `yaml:"source"`
	Store    StoreConfig    `yaml:"store"`
	Telegram TelegramConfig `yaml:"telegram"`
	Market   MarketConfig   `yaml:"market"`
	Report   ReportConfig   `yaml:"report"`
	Bot      BotConfig      `yaml:"bot"`
}

// InstanceConfig identifies this monitor.
type InstanceConfig struct {
	ID string `yaml:"id"`
}

// SourceConfig holds listing-source settings.
type SourceConfig struct {
	URL             string        `yaml:"url"`              // Search results URL
	Timeout         time.Duration `yaml:"timeout"`          // Per-request timeout
	MaxRetries      int           `yaml:"max_retries"`      // Retries on retryable HTTP errors
	RetryBackoff    time.Duration `yaml:"retry_backoff"`    // Base backoff between retries
	UserAgent       string        `yaml:"user_agent"`       // Sent on every request
	Pages           int           `yaml:"pages"`            // Result pages to walk per scan
	PageConcurrency int           `yaml:"page_concurrency"` // Max concurrent page fetches
}

// StoreConfig holds on-disk store settings.
type StoreConfig struct {
	DataDir string `yaml:"data_dir"`
}

// TelegramConfig holds Telegram delivery settings.
// BotToken and ChatID normally arrive via ${TELEGRAM_BOT_TOKEN} and
// ${TELEGRAM_CHAT_ID}; delivery is disabled when either is empty.
type TelegramConfig struct {
	BotToken     string        `yaml:"bot_token"`
	ChatID       string        `yaml:"chat_id"`
	APIURL       string        `yaml:"api_url"`
	Timeout      time.Duration `yaml:"timeout"`
	MessageLimit int           `yaml:"message_limit"` // Max characters per message part
}

// MarketConfig holds derived-metric settings.
type MarketConfig struct {
	BenchmarkPSF float64 `yaml:"benchmark_psf"` // Reference market price per sqft (RM)
}

// ReportConfig holds text report settings.
type ReportConfig struct {
	Dir        string `yaml:"dir"`
	MaxNew     int    `yaml:"max_new"`     // New listings shown in the summary message
	MaxChanges int    `yaml:"max_changes"` // Changes shown in the summary message
}

// BotConfig holds interactive bot settings.
type BotConfig struct {
	PollTimeout    time.Duration `yaml:"poll_timeout"`    // Telegram long-poll timeout
	ReloadInterval time.Duration `yaml:"reload_interval"` // How often the bot rereads the store
}
