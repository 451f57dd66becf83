// Package notify formats and delivers Telegram notifications.
//
// Delivery is best-effort: the Bot API is an external collaborator with
// its own availability, so callers log send failures and keep going.
// Messages longer than the configured limit are split on newline
// boundaries and sent as sequential parts.
package notify
