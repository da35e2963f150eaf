package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"journal/internal/entry"
	"journal/internal/journal"
)

// Telegram rejects messages longer than 4096 characters.
const maxMessageLen = 4000

const helpText = "📖 Journal bot\n\n" +
	"/new - get a prompt and write an entry\n" +
	"/list - show all entries\n" +
	"/save [name] - save the journal, optionally to another file in the journal folder\n" +
	"/load [name] - load the journal, replacing current entries\n" +
	"/cancel - drop the pending prompt"

func (b *Bot) handleIncomingMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	if !b.authSvc.IsAllowed(msg.From.ID) {
		log.Printf("Unauthorized access attempt by user ID: %d, username: @%s", msg.From.ID, msg.From.UserName)
		b.sendMessage(msg.Chat.ID, "⛔ You are not allowed to use this journal.")
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if _, ok := b.sessions.Pending(msg.Chat.ID); !ok {
		b.sendMessage(msg.Chat.ID, "Send /new to get a prompt first.")
		return
	}
	// photos, stickers and the like carry no text to keep
	if strings.TrimSpace(msg.Text) == "" {
		b.sendMessage(msg.Chat.ID, "📝 Please reply with text.")
		return
	}
	prompt, _ := b.sessions.Complete(msg.Chat.ID)
	b.store.Add(entry.New(b.now().Format(entry.DateLayout), prompt, msg.Text))
	log.Printf("📝 Entry added by %d, journal has %d entries", msg.From.ID, b.store.Len())
	b.sendMessage(msg.Chat.ID, "✅ Entry successfully added!")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	arg := strings.TrimSpace(msg.CommandArguments())
	switch msg.Command() {
	case "start", "help":
		b.sendMessage(msg.Chat.ID, helpText)
	case "new":
		b.handleNew(ctx, msg.Chat.ID)
	case "list":
		b.handleList(msg.Chat.ID)
	case "save", "load":
		path, err := b.resolvePath(arg)
		if err != nil {
			b.sendMessage(msg.Chat.ID, fmt.Sprintf("❌ %v", err))
			return
		}
		if msg.Command() == "save" {
			b.handleSave(msg.Chat.ID, path)
		} else {
			b.handleLoad(msg.Chat.ID, path)
		}
	case "cancel":
		b.sessions.Reset(msg.Chat.ID)
		b.sendMessage(msg.Chat.ID, "Prompt dropped.")
	default:
		b.sendMessage(msg.Chat.ID, "❌ Unknown command.\n\n"+helpText)
	}
}

func (b *Bot) handleNew(ctx context.Context, chatID int64) {
	prompt, err := b.prompts.Next(ctx)
	if err != nil {
		log.Printf("failed to get prompt: %v", err)
		b.sendMessage(chatID, "⚠️ Could not get a prompt, try again.")
		return
	}
	b.sessions.Begin(chatID, prompt)
	b.sendMessage(chatID, fmt.Sprintf("📌 Prompt: %s\n\n📝 Reply with your response.", prompt))
}

func (b *Bot) handleList(chatID int64) {
	entries := b.store.List()
	if len(entries) == 0 {
		b.sendMessage(chatID, "📄 No entries to display. Start writing today with /new!")
		return
	}
	var bld strings.Builder
	for _, e := range entries {
		var one strings.Builder
		e.Display(&one)
		if bld.Len() > 0 && bld.Len()+one.Len() > maxMessageLen {
			b.sendMessage(chatID, bld.String())
			bld.Reset()
		}
		bld.WriteString(one.String())
	}
	b.sendMessage(chatID, bld.String())
}

func (b *Bot) handleSave(chatID int64, path string) {
	if err := b.store.SaveToFile(path); err != nil {
		log.Printf("❌ save %s failed: %v", path, err)
		b.sendMessage(chatID, fmt.Sprintf("⚠️ Error saving file: %v", err))
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ Journal saved to '%s'.", path))
}

func (b *Bot) handleLoad(chatID int64, path string) {
	res, err := b.store.LoadFromFile(path)
	var nf *journal.NotFoundError
	switch {
	case errors.As(err, &nf):
		b.sendMessage(chatID, fmt.Sprintf("❌ File '%s' not found. Current entries are kept.", path))
		return
	case err != nil:
		log.Printf("❌ load %s failed: %v", path, err)
		b.sendMessage(chatID, fmt.Sprintf("⚠️ Error loading file: %v", err))
		return
	}
	text := fmt.Sprintf("✅ Loaded %d entries from '%s'.", res.Loaded, path)
	if n := len(res.Failures); n > 0 {
		for _, f := range res.Failures {
			log.Printf("⚠️ skipped %s: %v", path, f)
		}
		text += fmt.Sprintf("\n⚠️ Skipped %d malformed lines.", n)
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) remindAll(ctx context.Context) {
	for _, id := range b.authSvc.List() {
		if _, busy := b.sessions.Pending(id); busy {
			continue
		}
		prompt, err := b.prompts.Next(ctx)
		if err != nil {
			log.Printf("failed to get reminder prompt: %v", err)
			return
		}
		// private chats share the user's ID
		b.sessions.Begin(id, prompt)
		b.sendMessage(id, fmt.Sprintf("⏰ Time to journal!\n\n📌 Prompt: %s\n\n📝 Reply with your response.", prompt))
	}
}

// resolvePath keeps chat-supplied file names inside the journal's directory.
func (b *Bot) resolvePath(arg string) (string, error) {
	if arg == "" {
		return b.journalPath, nil
	}
	return journal.ResolveIn(filepath.Dir(b.journalPath), arg)
}
