package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultSourceURL = "https://www.lelongtips.com.my/search?keyword=&property_type%5B%5D=7&property_type%5B%5D=6" +
		"&property_type%5B%5D=8&property_type%5B%5D=4&property_type%5B%5D=5&state=kl_sel"
	DefaultSourceTimeout   = 30 * time.Second
	DefaultMaxRetries      = 3
	DefaultRetryBackoff    = 1 * time.Second
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultPages           = 1
	DefaultPageConcurrency = 4
	DefaultDataDir         = "data"
	DefaultTelegramAPIURL  = "https://api.telegram.org"
	DefaultTelegramTimeout = 10 * time.Second
	DefaultMessageLimit    = 4000
	DefaultBenchmarkPSF    = 1280
	DefaultReportDir       = "reports"
	DefaultMaxNew          = 3
	DefaultMaxChanges      = 2
	DefaultPollTimeout     = 30 * time.Second
	DefaultReloadInterval  = 10 * time.Minute
)

func (c *MonitorConfig) applyDefaults() {
	// Source defaults
	if c.Source.URL == "" {
		c.Source.URL = DefaultSourceURL
	}
	if c.Source.Timeout == 0 {
		c.Source.Timeout = DefaultSourceTimeout
	}
	if c.Source.MaxRetries == 0 {
		c.Source.MaxRetries = DefaultMaxRetries
	}
	if c.Source.RetryBackoff == 0 {
		c.Source.RetryBackoff = DefaultRetryBackoff
	}
	if c.Source.UserAgent == "" {
		c.Source.UserAgent = DefaultUserAgent
	}
	if c.Source.Pages == 0 {
		c.Source.Pages = DefaultPages
	}
	if c.Source.PageConcurrency == 0 {
		c.Source.PageConcurrency = DefaultPageConcurrency
	}

	// Store defaults
	if c.Store.DataDir == "" {
		c.Store.DataDir = DefaultDataDir
	}

	// Telegram defaults
	if c.Telegram.APIURL == "" {
		c.Telegram.APIURL = DefaultTelegramAPIURL
	}
	if c.Telegram.Timeout == 0 {
		c.Telegram.Timeout = DefaultTelegramTimeout
	}
	if c.Telegram.MessageLimit == 0 {
		c.Telegram.MessageLimit = DefaultMessageLimit
	}

	// Market defaults
	if c.Market.BenchmarkPSF == 0 {
		c.Market.BenchmarkPSF = DefaultBenchmarkPSF
	}

	// Report defaults
	if c.Report.Dir == "" {
		c.Report.Dir = DefaultReportDir
	}
	if c.Report.MaxNew == 0 {
		c.Report.MaxNew = DefaultMaxNew
	}
	if c.Report.MaxChanges == 0 {
		c.Report.MaxChanges = DefaultMaxChanges
	}

	// Bot defaults
	if c.Bot.PollTimeout == 0 {
		c.Bot.PollTimeout = DefaultPollTimeout
	}
	if c.Bot.ReloadInterval == 0 {
		c.Bot.ReloadInterval = DefaultReloadInterval
	}
}
