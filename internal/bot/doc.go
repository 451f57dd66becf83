// Package bot implements the interactive Telegram command bot.
//
// The bot long-polls the Bot API for commands and answers them from the
// same data files the monitor writes. It never mutates the store.
package bot
