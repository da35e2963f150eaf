package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	"journal/internal/auth"
	"journal/internal/config"
	"journal/internal/journal"
	"journal/internal/prompts"
	"journal/internal/scheduler"
)

// Run starts the bot with daily reminders and blocks until ctx is done.
func Run(ctx context.Context, cfg *config.Config, store *journal.Store, src prompts.Source) error {
	if cfg.TelegramBotToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is required")
	}
	authSvc := auth.New(cfg.AllowedUsers)
	if len(authSvc.List()) == 0 {
		log.Printf("⚠️ ALLOWED_USERS is empty, the bot will refuse everyone")
	}

	bot, err := New(cfg.TelegramBotToken, authSvc, store, src, cfg.JournalFilePath)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	sch := scheduler.New()
	sch.SetReminderFunction(bot.RequestReminder)
	if err := sch.Start(cfg.ReminderSchedule); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sch.Stop()

	bot.Start(ctx)
	return nil
}
