package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"journal/internal/config"
	"journal/internal/journal"
	"journal/internal/mcpserver"
	"journal/internal/prompts"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	store, err := journal.Open(cfg.JournalFilePath)
	if err != nil {
		log.Fatalf("❌ failed to open journal: %v", err)
	}
	src := prompts.FromConfig(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))

	js := mcpserver.NewJournalServer(store, src, cfg.JournalFilePath)
	if err := mcpserver.Run(context.Background(), js, "1.0.0"); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
