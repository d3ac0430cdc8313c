package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GROQ_MODEL", "")
	t.Setenv("FIREWORKS_MODEL", "")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", cfg.Addr)
	}
	if cfg.GroqModel == "" || cfg.FireworksModel == "" {
		t.Fatalf("expected default models, got %+v", cfg)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("BIRDEYE_API_KEY", "be-key")
	t.Setenv("SERPER_API_KEY", "serper-key")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")

	cfg := Load()
	if cfg.Addr != ":9090" || cfg.BirdeyeAPIKey != "be-key" || cfg.SerperAPIKey != "serper-key" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.GroqModel != "llama-3.1-8b-instant" {
		t.Fatalf("expected model override, got %s", cfg.GroqModel)
	}
}
