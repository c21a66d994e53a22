package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"saigon-foodtour/internal/app"
	"saigon-foodtour/internal/config"
	"saigon-foodtour/internal/llm"
	"saigon-foodtour/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init app: %v", err)
	}
	defer application.Close()

	var textGen llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg)
		if err != nil {
			log.Fatalf("Failed to init Gemini client: %v", err)
		}
		if closer, ok := client.(llm.Closer); ok {
			defer closer.Close()
		}
		textGen = client
	} else {
		log.Println("GEMINI_API_KEY not set, plan summaries disabled")
	}

	sessions := telegram.NewSessionRepository(application.DB())

	bot, err := telegram.NewBot(cfg, application, sessions, textGen)
	if err != nil {
		log.Fatalf("Failed to init telegram bot: %v", err)
	}
	bot.RegisterHandlers()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
