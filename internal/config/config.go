package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Token        string  `env:"TOKEN,required,notEmpty"`
	AllowedUsers []int64 `env:"ALLOWED_USERS,required,notEmpty"`

	// At least one summarizer backend key is required; OpenAI wins when
	// both are set.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`

	// DBPath enables the SQLite preference store. Empty keeps preferences
	// in memory for the process lifetime.
	DBPath string `env:"DB_PATH"`

	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT"     envDefault:"30s"`
	SummarizeTimeout time.Duration `env:"SUMMARIZE_TIMEOUT" envDefault:"60s"`
}

func Load() (Config, error) {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.OpenAIAPIKey == "" && cfg.GeminiAPIKey == "" {
		return Config{}, errors.New("either OPENAI_API_KEY or GEMINI_API_KEY is required")
	}

	return cfg, nil
}
