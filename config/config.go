package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port             string
	TelegramBotToken string
	TelegramChatID   string
	EdamamAppID      string
	EdamamAppKey     string
}

// Load reads .env (when present) and the process environment. Only the
// port has a default; notification and lookup features stay disabled until
// their credentials are set.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:             port,
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		EdamamAppID:      os.Getenv("EDAMAM_APP_ID"),
		EdamamAppKey:     os.Getenv("EDAMAM_APP_KEY"),
	}
}
