package docquiz

import (
	"errors"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("SESSION_KEY", "")
	t.Setenv("PORT", "")
	t.Setenv("RUN_LOG_DIR", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != 8180 {
		t.Errorf("Port = %d, want default 8180", cfg.Port)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("OpenAIAPIKey = %q", cfg.OpenAIAPIKey)
	}
	if cfg.SessionKey == "" {
		t.Error("SessionKey fallback not applied")
	}
	if cfg.Model != "" {
		t.Errorf("Model = %q, want empty default", cfg.Model)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("PORT", "9001")
	t.Setenv("SESSION_KEY", "super-secret")
	t.Setenv("RUN_LOG_DIR", "/tmp/runs")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Port != 9001 {
		t.Errorf("Port = %d, want 9001", cfg.Port)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.SessionKey != "super-secret" {
		t.Errorf("SessionKey = %q", cfg.SessionKey)
	}
	if cfg.RunLogDir != "/tmp/runs" {
		t.Errorf("RunLogDir = %q", cfg.RunLogDir)
	}
}

func TestLoadConfigMissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("LoadConfig() = %v, want ErrMissingAPIKey", err)
	}
}
