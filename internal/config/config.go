package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath    string
	PlanStoragePath string

	// Optional LLM config; plan summaries are disabled when empty.
	GeminiAPIKey string

	// Telegram Config
	TelegramBotToken       string
	TelegramWebhookURL     string
	TelegramAllowedUserIDs []int64
	AdminTelegramID        int64

	// Planning defaults
	DefaultRadiusKM float64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	dbPath := os.Getenv("FOODTOUR_DB_PATH")
	if dbPath == "" {
		dbPath = "data/foodtour.db"
	}

	planPath := os.Getenv("PLAN_STORAGE_PATH")
	if planPath == "" {
		planPath = "data/plans"
	}

	defaultRadius := 5.0
	if s := os.Getenv("DEFAULT_RADIUS_KM"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("DEFAULT_RADIUS_KM must be a positive number, got %q", s)
		}
		defaultRadius = v
	}

	var allowedIDs []int64
	if s := os.Getenv("TELEGRAM_ALLOWED_USER_IDS"); s != "" {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("TELEGRAM_ALLOWED_USER_IDS contains invalid id %q", part)
			}
			allowedIDs = append(allowedIDs, id)
		}
	}

	var adminID int64
	if s := os.Getenv("TELEGRAM_ADMIN_ID"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ADMIN_ID must be an integer, got %q", s)
		}
		adminID = id
	}

	return &Config{
		DatabasePath:           dbPath,
		PlanStoragePath:        planPath,
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		TelegramBotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:     os.Getenv("TELEGRAM_WEBHOOK_URL"),
		TelegramAllowedUserIDs: allowedIDs,
		AdminTelegramID:        adminID,
		DefaultRadiusKM:        defaultRadius,
	}, nil
}

// RequireTelegram validates the fields the bot cannot run without.
func (c *Config) RequireTelegram() error {
	if c.TelegramBotToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable not set")
	}
	if c.TelegramWebhookURL == "" {
		return fmt.Errorf("TELEGRAM_WEBHOOK_URL environment variable not set")
	}
	return nil
}
