package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Parse modes for completion responses.
const (
	ParseModeStrict  = "strict"
	ParseModeLenient = "lenient"
)

type Config struct {
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"SERVER_PORT" envDefault:"5250"`

		// Gin mode: debug, release or test
		GinMode string `env:"GIN_MODE" envDefault:"release"`

		// Comma separated list of origins allowed by CORS, "*" allows all
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

		// Time given to in-flight requests on shutdown
		ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	}

	Completion struct {
		// Credential for the completion service. Empty fails every analysis request.
		APIKey string `env:"OPENAI_API_KEY"`

		Model       string  `env:"OPENAI_MODEL" envDefault:"gpt-4"`
		Temperature float32 `env:"OPENAI_TEMPERATURE" envDefault:"0.7"`

		// Overrides the API endpoint, e.g. for a proxy
		BaseURL string `env:"OPENAI_BASE_URL"`

		// Upper bound for one completion call, 0 waits indefinitely
		Timeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`

		// strict or lenient
		ParseMode string `env:"PARSE_MODE" envDefault:"strict"`
	}

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using process environment")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.Completion.ParseMode = strings.ToLower(strings.TrimSpace(cfg.Completion.ParseMode))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express. A missing API key is not an
// error here; requests report it instead.
func (c *Config) Validate() error {
	switch c.Completion.ParseMode {
	case ParseModeStrict, ParseModeLenient:
	default:
		return fmt.Errorf("invalid PARSE_MODE %q: must be %q or %q", c.Completion.ParseMode, ParseModeStrict, ParseModeLenient)
	}

	if c.Completion.Timeout < 0 {
		return fmt.Errorf("invalid COMPLETION_TIMEOUT %s: must not be negative", c.Completion.Timeout)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return nil
}
