package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"journal/internal/config"
	"journal/internal/journal"
	"journal/internal/prompts"
	"journal/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	store, err := journal.Open(cfg.JournalFilePath)
	if err != nil {
		log.Fatalf("failed to open journal: %v", err)
	}
	src := prompts.FromConfig(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := telegram.Run(ctx, cfg, store, src); err != nil {
		log.Fatalf("❌ Bot failed: %v", err)
	}
}
