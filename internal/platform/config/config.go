package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

type Config struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Format  string        `yaml:"format"`
	Debug   bool          `yaml:"debug"`

	Voice VoiceConfig `yaml:"voice"`
	VR    VRConfig    `yaml:"vr"`
	Coach CoachConfig `yaml:"coach"`
}

type VoiceConfig struct {
	ActionDelay   time.Duration `yaml:"action_delay"`
	FallbackDelay time.Duration `yaml:"fallback_delay"`
	Seed          int64         `yaml:"seed"`
}

type VRConfig struct {
	Period time.Duration `yaml:"period"`
	Step   int           `yaml:"step"`
}

type CoachConfig struct {
	Addr         string `yaml:"addr"`
	GeminiAPIKey string `yaml:"gemini_api_key"`
	Model        string `yaml:"model"`
}

func Default() Config {
	return Config{
		BaseURL: "http://127.0.0.1:5000",
		Timeout: 30 * time.Second,
		Format:  FormatHTML,
		Voice: VoiceConfig{
			ActionDelay:   1500 * time.Millisecond,
			FallbackDelay: time.Second,
		},
		VR: VRConfig{
			Period: time.Second,
			Step:   20,
		},
		Coach: CoachConfig{
			Addr:  ":5000",
			Model: "gemini-1.5-flash",
		},
	}
}

// Load reads defaults, then the optional YAML file at path, then the
// environment. An empty path skips the file. The result is not validated;
// callers apply their flag overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	if v := os.Getenv("NEUROWELL_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && cfg.Coach.GeminiAPIKey == "" {
		cfg.Coach.GeminiAPIKey = v
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base url %q must be absolute", c.BaseURL)
	}
	switch c.Format {
	case FormatHTML, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.VR.Period <= 0 {
		return fmt.Errorf("vr period must be positive")
	}
	if c.VR.Step <= 0 || c.VR.Step > 100 {
		return fmt.Errorf("vr step must be in (0,100]")
	}
	if c.Voice.ActionDelay < 0 || c.Voice.FallbackDelay < 0 {
		return fmt.Errorf("voice delays must not be negative")
	}
	return nil
}
