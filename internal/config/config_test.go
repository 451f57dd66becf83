package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
instance:
  id: test-monitor
source:
  url: https://example.com/search
  pages: 3
store:
  data_dir: /tmp/lelongwatch
telegram:
  bot_token: abc123
  chat_id: "42"
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Instance.ID != "test-monitor" {
		t.Errorf("Instance.ID = %q, want %q", cfg.Instance.ID, "test-monitor")
	}
	if cfg.Source.URL != "https://example.com/search" {
		t.Errorf("Source.URL = %q, want %q", cfg.Source.URL, "https://example.com/search")
	}
	if cfg.Source.Pages != 3 {
		t.Errorf("Source.Pages = %d, want 3", cfg.Source.Pages)
	}
	if cfg.Telegram.ChatID != "42" {
		t.Errorf("Telegram.ChatID = %q, want %q", cfg.Telegram.ChatID, "42")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "secret123")
	t.Setenv("TEST_CHAT_ID", "987654")

	yaml := `
instance:
  id: test-monitor
telegram:
  bot_token: ${TEST_BOT_TOKEN}
  chat_id: ${TEST_CHAT_ID}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Telegram.BotToken != "secret123" {
		t.Errorf("Telegram.BotToken = %q, want %q", cfg.Telegram.BotToken, "secret123")
	}
	if cfg.Telegram.ChatID != "987654" {
		t.Errorf("Telegram.ChatID = %q, want %q", cfg.Telegram.ChatID, "987654")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
instance:
  id: test-monitor
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Source.URL != DefaultSourceURL {
		t.Errorf("Source.URL = %q, want default %q", cfg.Source.URL, DefaultSourceURL)
	}
	if cfg.Source.Timeout != DefaultSourceTimeout {
		t.Errorf("Source.Timeout = %v, want default %v", cfg.Source.Timeout, DefaultSourceTimeout)
	}
	if cfg.Store.DataDir != DefaultDataDir {
		t.Errorf("Store.DataDir = %q, want default %q", cfg.Store.DataDir, DefaultDataDir)
	}
	if cfg.Telegram.MessageLimit != DefaultMessageLimit {
		t.Errorf("Telegram.MessageLimit = %d, want default %d", cfg.Telegram.MessageLimit, DefaultMessageLimit)
	}
	if cfg.Market.BenchmarkPSF != DefaultBenchmarkPSF {
		t.Errorf("Market.BenchmarkPSF = %v, want default %v", cfg.Market.BenchmarkPSF, float64(DefaultBenchmarkPSF))
	}
	if cfg.Bot.PollTimeout != DefaultPollTimeout {
		t.Errorf("Bot.PollTimeout = %v, want default %v", cfg.Bot.PollTimeout, DefaultPollTimeout)
	}
}

func TestValidate(t *testing.T) {
	valid := func() MonitorConfig {
		return MonitorConfig{
			Instance: InstanceConfig{ID: "test"},
			Source: SourceConfig{
				URL:             "https://example.com",
				Timeout:         30 * time.Second,
				Pages:           1,
				PageConcurrency: 4,
			},
			Store:    StoreConfig{DataDir: "data"},
			Telegram: TelegramConfig{MessageLimit: 4000},
			Market:   MarketConfig{BenchmarkPSF: 1280},
			Report:   ReportConfig{Dir: "reports", MaxNew: 3, MaxChanges: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*MonitorConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *MonitorConfig) {},
			wantErr: "",
		},
		{
			name:    "missing instance id",
			mutate:  func(c *MonitorConfig) { c.Instance.ID = "" },
			wantErr: "instance.id is required",
		},
		{
			name:    "missing source url",
			mutate:  func(c *MonitorConfig) { c.Source.URL = "" },
			wantErr: "source.url is required",
		},
		{
			name:    "zero pages",
			mutate:  func(c *MonitorConfig) { c.Source.Pages = 0 },
			wantErr: "source.pages must be >= 1",
		},
		{
			name:    "token without chat id",
			mutate:  func(c *MonitorConfig) { c.Telegram.BotToken = "abc" },
			wantErr: "telegram.chat_id is required when telegram.bot_token is set",
		},
		{
			name:    "message limit too large",
			mutate:  func(c *MonitorConfig) { c.Telegram.MessageLimit = 5000 },
			wantErr: "telegram.message_limit must be between 1 and 4096, got 5000",
		},
		{
			name:    "zero benchmark psf",
			mutate:  func(c *MonitorConfig) { c.Market.BenchmarkPSF = 0 },
			wantErr: "market.benchmark_psf must be > 0, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
