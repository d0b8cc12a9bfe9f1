package config

import (
	"slices"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("TOKEN", "test-token")
	t.Setenv("ALLOWED_USERS", "42,1001")
	t.Setenv("OPENAI_API_KEY", "sk-test")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FETCH_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Token != "test-token" {
		t.Errorf("Token = %q, want %q", cfg.Token, "test-token")
	}

	if !slices.Equal(cfg.AllowedUsers, []int64{42, 1001}) {
		t.Errorf("AllowedUsers = %v, want [42 1001]", cfg.AllowedUsers)
	}

	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}

	if cfg.SummarizeTimeout != 60*time.Second {
		t.Errorf("SummarizeTimeout = %v, want default 60s", cfg.SummarizeTimeout)
	}
}

func TestLoadRequiresSummarizerKey(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("ALLOWED_USERS", "42")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("Expected an error without any summarizer API key")
	}
}

func TestLoadGeminiOnlyIsEnough(t *testing.T) {
	t.Setenv("TOKEN", "test-token")
	t.Setenv("ALLOWED_USERS", "42")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GeminiAPIKey != "gm-test" {
		t.Errorf("GeminiAPIKey = %q, want %q", cfg.GeminiAPIKey, "gm-test")
	}
}
