package telegram

import (
	"context"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"journal/internal/auth"
	"journal/internal/journal"
	"journal/internal/prompts"
	"journal/internal/session"
)

// Bot is the Telegram front-end of the journal. All journal access happens
// on the goroutine running Start.
type Bot struct {
	api         *tgbotapi.BotAPI
	s           sender
	authSvc     *auth.Service
	store       *journal.Store
	prompts     prompts.Source
	sessions    *session.Manager
	journalPath string
	reminders   chan struct{}
	now         func() time.Time
}

func New(botToken string, authSvc *auth.Service, store *journal.Store, src prompts.Source, journalPath string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	log.Printf("🤖 Authorized on account @%s", api.Self.UserName)
	return &Bot{
		api:         api,
		s:           botAPISender{api: api},
		authSvc:     authSvc,
		store:       store,
		prompts:     src,
		sessions:    session.NewManager(),
		journalPath: journalPath,
		reminders:   make(chan struct{}, 1),
		now:         time.Now,
	}, nil
}

// RequestReminder asks the update loop to send everyone a prompt. It never
// blocks; a reminder already queued absorbs the request.
func (b *Bot) RequestReminder(ctx context.Context) error {
	select {
	case b.reminders <- struct{}{}:
	default:
	}
	return nil
}

func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.reminders:
			b.remindAll(ctx)
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				b.handleIncomingMessage(ctx, update.Message)
			}
		}
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
