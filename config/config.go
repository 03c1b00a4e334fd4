package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/teilomillet/promptgen/utils"
)

type Config struct {
	LogLevel             utils.LogLevel `env:"PROMPTGEN_LOG_LEVEL" envDefault:"WARN"`
	LogFormat            string         `env:"PROMPTGEN_LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	TechniquesConfigPath string         `env:"PROMPTGEN_TECHNIQUES_CONFIG"`
	MaxPromptLength      int            `env:"PROMPTGEN_MAX_PROMPT_LENGTH" envDefault:"4096" validate:"min=1"`
	DefaultTemperature   float64        `env:"PROMPTGEN_DEFAULT_TEMPERATURE" envDefault:"0.7" validate:"min=0,max=2"`
	MaxConcurrency       int            `env:"PROMPTGEN_MAX_CONCURRENCY" envDefault:"4" validate:"min=1"`
	RateLimit            float64        `env:"PROMPTGEN_RATE_LIMIT" envDefault:"0" validate:"min=0"`
	RateBurst            int            `env:"PROMPTGEN_RATE_BURST" envDefault:"1" validate:"min=1"`
	TokenModel           string         `env:"PROMPTGEN_TOKEN_MODEL" envDefault:"gpt-4o"`
	Version              string         `env:"PROMPTGEN_VERSION" envDefault:"0.1.0"`
	RequestTimeout       time.Duration  `env:"PROMPTGEN_REQUEST_TIMEOUT" envDefault:"30s"`
	DebugDir             string         `env:"PROMPTGEN_DEBUG_DIR"`
	Logger               utils.Logger
}

var validate = validator.New()

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configured limits.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type ConfigOption func(*Config)

// NewConfig returns defaults suited to library use: quiet logging and the
// heuristic token counter.
func NewConfig() *Config {
	return &Config{
		LogLevel:           utils.LogLevelWarn,
		LogFormat:          "text",
		MaxPromptLength:    4096,
		DefaultTemperature: 0.7,
		MaxConcurrency:     4,
		RateBurst:          1,
		Version:            "0.1.0",
		RequestTimeout:     30 * time.Second,
	}
}

func SetLogLevel(level utils.LogLevel) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

func SetLogFormat(format string) ConfigOption {
	return func(c *Config) {
		c.LogFormat = format
	}
}

func SetLogger(logger utils.Logger) ConfigOption {
	return func(c *Config) {
		c.Logger = logger
	}
}

func SetTechniquesConfigPath(path string) ConfigOption {
	return func(c *Config) {
		c.TechniquesConfigPath = path
	}
}

func SetMaxPromptLength(n int) ConfigOption {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.MaxPromptLength = n
	}
}

func SetDefaultTemperature(temperature float64) ConfigOption {
	return func(c *Config) {
		c.DefaultTemperature = temperature
	}
}

func SetMaxConcurrency(n int) ConfigOption {
	return func(c *Config) {
		if n < 1 {
			n = 1
		}
		c.MaxConcurrency = n
	}
}

// SetRateLimit paces batch generation to limit requests per second.
// Zero disables pacing.
func SetRateLimit(perSecond float64, burst int) ConfigOption {
	return func(c *Config) {
		if burst < 1 {
			burst = 1
		}
		c.RateLimit = perSecond
		c.RateBurst = burst
	}
}

func SetTokenModel(model string) ConfigOption {
	return func(c *Config) {
		c.TokenModel = model
	}
}

func SetRequestTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = timeout
	}
}

func SetDebugDir(dir string) ConfigOption {
	return func(c *Config) {
		c.DebugDir = dir
	}
}

func ApplyOptions(cfg *Config, options ...ConfigOption) {
	for _, option := range options {
		option(cfg)
	}
}

// NewLogger builds the logger described by the config, or returns the
// one set with SetLogger.
func (c *Config) NewLogger() (utils.Logger, error) {
	if c.Logger != nil {
		return c.Logger, nil
	}
	if c.LogFormat == "json" {
		zl, err := utils.NewZapLogger(c.LogLevel)
		if err != nil {
			return nil, err
		}
		return zl, nil
	}
	return utils.NewLogger(c.LogLevel), nil
}
