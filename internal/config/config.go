package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"learnsmart-backend/internal/tutor"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          int           `env:"PORT" envDefault:"3000"`
	DatabaseURL   string        `env:"DATABASE_URL" envDefault:"./data/learnsmart.db"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	LLMProvider   string        `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMTimeout    time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	StaticDir     string        `env:"STATIC_DIR"`
	LogFile       string        `env:"LOG_FILE"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment. A nil
// environment map means os.Environ.
func Load(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	switch c.LLMProvider {
	case tutor.ProviderOpenAI, tutor.ProviderLangchain:
	default:
		return fmt.Errorf("invalid LLM_PROVIDER '%s': must be '%s' or '%s'", c.LLMProvider, tutor.ProviderOpenAI, tutor.ProviderLangchain)
	}
	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLMTimeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

func (c Config) Completer() tutor.CompleterConfig {
	return tutor.CompleterConfig{
		Provider: c.LLMProvider,
		APIKey:   c.OpenAIAPIKey,
		BaseURL:  c.OpenAIBaseURL,
		Model:    c.OpenAIModel,
	}
}
