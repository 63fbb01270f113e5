package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"neurowell/internal/platform/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("NEUROWELL_BASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Voice.ActionDelay != 1500*time.Millisecond || cfg.Voice.FallbackDelay != time.Second {
		t.Fatalf("unexpected voice delays %+v", cfg.Voice)
	}
	if cfg.VR.Step != 20 || cfg.VR.Period != time.Second {
		t.Fatalf("unexpected vr config %+v", cfg.VR)
	}
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "neurowell.yaml")
	body := `
base_url: http://example.test:8080
format: markdown
voice:
  action_delay: 10ms
vr:
  period: 5ms
  step: 25
coach:
  gemini_api_key: from-file
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("NEUROWELL_BASE_URL", "http://env.test")
	t.Setenv("GEMINI_API_KEY", "from-env")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BaseURL != "http://env.test" {
		t.Fatalf("env should override base url, got %q", cfg.BaseURL)
	}
	if cfg.Format != config.FormatMarkdown {
		t.Fatalf("expected markdown format, got %q", cfg.Format)
	}
	if cfg.Voice.ActionDelay != 10*time.Millisecond {
		t.Fatalf("expected 10ms action delay, got %s", cfg.Voice.ActionDelay)
	}
	if cfg.Voice.FallbackDelay != time.Second {
		t.Fatalf("unset fallback delay should keep default, got %s", cfg.Voice.FallbackDelay)
	}
	if cfg.VR.Step != 25 || cfg.VR.Period != 5*time.Millisecond {
		t.Fatalf("unexpected vr config %+v", cfg.VR)
	}
	if cfg.Coach.GeminiAPIKey != "from-file" {
		t.Fatalf("file api key should win over env, got %q", cfg.Coach.GeminiAPIKey)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"relative base url", func(c *config.Config) { c.BaseURL = "/api" }},
		{"unknown format", func(c *config.Config) { c.Format = "xml" }},
		{"zero step", func(c *config.Config) { c.VR.Step = 0 }},
		{"step above 100", func(c *config.Config) { c.VR.Step = 120 }},
		{"zero period", func(c *config.Config) { c.VR.Period = 0 }},
		{"negative delay", func(c *config.Config) { c.Voice.ActionDelay = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("NEUROWELL_BASE_URL", "localhost:5000")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load should not validate: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("relative env base url should fail validation")
	}
	cfg.BaseURL = "http://127.0.0.1:5000"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("flag override should make config valid: %v", err)
	}
}
