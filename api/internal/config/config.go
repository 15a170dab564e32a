package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	StaticDir string

	// Which engine judges drawings and writes challenges: "openai" or "gemini".
	Provider string

	OpenAIAPIKey     string
	OpenAIModel      string
	OpenAITextModel  string
	OpenAIImageModel string

	GeminiAPIKey string
	GeminiModel  string

	// Absolute ink-pixel count above which a canvas counts as drawn on.
	// The reference calibration assumes one fixed canvas size.
	InkPixelThreshold int

	// Optional collaborators. Empty values disable them.
	DatabaseURL      string
	TelegramBotToken string
	TelegramChatID   int64
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("bad integer in env %s=%q, using %d", k, v, def)
	}
	return def
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		StaticDir: getEnv("STATIC_DIR", "static"),

		Provider: getEnv("LLM_PROVIDER", "openai"),

		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o"),
		OpenAITextModel:  getEnv("OPENAI_TEXT_MODEL", "gpt-3.5-turbo"),
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		InkPixelThreshold: getEnvInt("INK_PIXEL_THRESHOLD", 100),

		DatabaseURL:      os.Getenv("DATABASE_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("bad TELEGRAM_CHAT_ID %q: %v", v, err)
		}
		cfg.TelegramChatID = id
	}

	// The selected provider's credential is a startup requirement.
	switch cfg.Provider {
	case "openai":
		cfg.OpenAIAPIKey = mustEnv("OPENAI_API_KEY")
	case "gemini":
		cfg.GeminiAPIKey = mustEnv("GEMINI_API_KEY")
	default:
		log.Fatalf("unknown LLM_PROVIDER %q; use 'openai' or 'gemini'", cfg.Provider)
	}

	return cfg
}
