// Package config loads server and boundary settings. Everything has a usable
// default except the API credential, which must come from the environment
// and is checked before the first boundary call, not after.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey means no credential is available for the generation
// boundary. Startup fails fast on it.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY environment variable is not set")

type Server struct {
	Addr            string        `mapstructure:"addr"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Gemini struct {
	Model   string        `mapstructure:"model"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type Config struct {
	Server Server `mapstructure:"server"`
	Gemini Gemini `mapstructure:"gemini"`
}

// Load reads an optional YAML config file. An empty path yields defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", 90*time.Second)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// APIKeyFromEnv resolves the generation credential, preferring GEMINI_API_KEY
// with API_KEY as a fallback.
func APIKeyFromEnv() (string, error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	if key := os.Getenv("API_KEY"); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}
