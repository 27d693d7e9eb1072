package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("model: got %q", cfg.GeminiModel)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
	if cfg.Top != 3 {
		t.Errorf("top: got %d", cfg.Top)
	}
	if cfg.Format != "text" {
		t.Errorf("format: got %q", cfg.Format)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "av-key")
	t.Setenv("STOCKMIND_GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("STOCKMIND_TIMEOUT", "15s")
	t.Setenv("STOCKMIND_TOP", "5")
	t.Setenv("STOCKMIND_FORMAT", "json")

	cfg := Load()
	if cfg.GeminiAPIKey != "g-key" {
		t.Errorf("gemini key: got %q", cfg.GeminiAPIKey)
	}
	if cfg.AlphaVantageAPIKey != "av-key" {
		t.Errorf("alpha vantage key: got %q", cfg.AlphaVantageAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("model: got %q", cfg.GeminiModel)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("timeout: got %v", cfg.Timeout)
	}
	if cfg.Top != 5 {
		t.Errorf("top: got %d", cfg.Top)
	}
	if cfg.Format != "json" {
		t.Errorf("format: got %q", cfg.Format)
	}
}
