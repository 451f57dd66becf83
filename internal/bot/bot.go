package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"lelongwatch/internal/model"
	"lelongwatch/internal/notify"
	"lelongwatch/internal/store"
)

// Config holds bot settings.
type Config struct {
	PollTimeout    time.Duration // Telegram long-poll timeout
	ReloadInterval time.Duration // How often the store is reread
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		PollTimeout:    30 * time.Second,
		ReloadInterval: 10 * time.Minute,
	}
}

// Bot answers Telegram commands from the stored data.
type Bot struct {
	cfg    Config
	tg     *notify.Telegram
	store  *store.Store
	logger *slog.Logger

	offset     int64
	properties map[string]model.StoredListing
	lastReload time.Time
}

// New creates a Bot.
func New(cfg Config, tg *notify.Telegram, st *store.Store, logger *slog.Logger) *Bot {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bot{
		cfg:    cfg,
		tg:     tg,
		store:  st,
		logger: logger,
	}
}

// Run polls for updates until the context is cancelled. Transient API
// errors back off and continue.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.reload(); err != nil {
		return err
	}
	b.logger.Info("bot started", "properties", len(b.properties))

	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return nil
		default:
		}

		updates, err := b.tg.GetUpdates(ctx, b.offset+1, b.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				b.logger.Info("bot stopped")
				return nil
			}
			b.logger.Warn("get updates failed, backing off", "error", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(5 * time.Second):
			}
			continue
		}

		if time.Since(b.lastReload) > b.cfg.ReloadInterval {
			if err := b.reload(); err != nil {
				b.logger.Warn("store reload failed", "error", err)
			}
		}

		for _, u := range updates {
			b.offset = u.UpdateID
			if u.Message == nil {
				continue
			}
			b.handleMessage(ctx, u.Message.Chat.ID, u.Message.Text)
		}
	}
}

func (b *Bot) reload() error {
	props, err := b.store.LoadProperties()
	if err != nil {
		return err
	}
	b.properties = props
	b.lastReload = time.Now()
	return nil
}

func (b *Bot) handleMessage(ctx context.Context, chatID int64, text string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		b.reply(ctx, chatID, "Send /help to see available commands.")
		return
	}

	command, args, _ := strings.Cut(text, " ")
	command = strings.ToLower(command)
	// Group chats address commands as /status@botname.
	command, _, _ = strings.Cut(command, "@")
	args = strings.TrimSpace(args)

	switch command {
	case "/start", "/help":
		b.cmdHelp(ctx, chatID)
	case "/status":
		b.cmdStatus(ctx, chatID)
	case "/new":
		b.cmdNew(ctx, chatID)
	case "/changes":
		b.cmdChanges(ctx, chatID)
	case "/search":
		b.cmdSearch(ctx, chatID, args)
	case "/type":
		b.cmdType(ctx, chatID, args)
	case "/under":
		b.cmdUnder(ctx, chatID, args)
	case "/above":
		b.cmdAbove(ctx, chatID, args)
	case "/location":
		b.cmdLocation(ctx, chatID, args)
	case "/summary":
		b.cmdSummary(ctx, chatID)
	case "/reload":
		b.cmdReload(ctx, chatID)
	default:
		b.reply(ctx, chatID, "Unknown command. Send /help to see available commands.")
	}
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if err := b.tg.SendTo(ctx, formatChatID(chatID), text); err != nil {
		b.logger.Warn("reply failed", "chat_id", chatID, "error", err)
	}
}
