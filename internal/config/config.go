package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type PromptSource string

const (
	PromptSourceStatic PromptSource = "static"
	PromptSourceOpenAI PromptSource = "openai"
	PromptSourceYandex PromptSource = "yandex"
)

type Config struct {
	// Storage
	JournalFilePath string `env:"JOURNAL_FILE_PATH" envDefault:"data/journal.txt"`

	// Prompt generation
	PromptSource     PromptSource `env:"PROMPT_SOURCE" envDefault:"static"`
	OpenAIAPIKey     string       `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string       `env:"OPENAI_BASE_URL"`
	OpenAIModel      string       `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string       `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string       `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Telegram
	TelegramBotToken string  `env:"TELEGRAM_BOT_TOKEN"`
	AllowedUsers     []int64 `env:"ALLOWED_USERS" envSeparator:":"`

	// Reminders, standard 5-field cron in UTC
	ReminderSchedule string `env:"REMINDER_SCHEDULE" envDefault:"0 21 * * *"`
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func New() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
