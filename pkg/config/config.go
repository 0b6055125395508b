// Package config loads application settings from environment variables and
// an optional .env file.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dzivkovi/semanticjson/pkg/logger"
	"github.com/dzivkovi/semanticjson/pkg/reconciler"
)

// Config holds all configuration for the tool.
type Config struct {
	// Embedding configures the embedding server client.
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	// Compare holds comparison defaults overridable per invocation.
	Compare CompareConfig `mapstructure:"compare"`
	// Log configures the logger.
	Log logger.Config `mapstructure:"log"`
}

// EmbeddingConfig mirrors embedding.Config with plain types viper can bind.
type EmbeddingConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	Model          string `mapstructure:"model"`
	Dimension      int    `mapstructure:"dimension"`
	BatchSize      int    `mapstructure:"batch_size"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the configured request timeout as a duration.
func (c EmbeddingConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CompareConfig holds comparison defaults.
type CompareConfig struct {
	Threshold float64 `mapstructure:"threshold"`
	Format    string  `mapstructure:"format"`
}

// Load reads configuration from path/.env (if present) and the process
// environment. Keys map to SEMANTICJSON_* variables, e.g.
// SEMANTICJSON_EMBEDDING_ENDPOINT and SEMANTICJSON_COMPARE_THRESHOLD.
func Load(path string) (*Config, error) {
	envPath := ".env"
	if path != "" && path != "." {
		envPath = filepath.Join(path, ".env")
	}
	// Missing .env is fine; production setups use real environment variables.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	v.SetDefault("embedding.endpoint", "")
	v.SetDefault("embedding.model", "all-MiniLM-L6-v2")
	v.SetDefault("embedding.dimension", 0)
	v.SetDefault("embedding.batch_size", 32)
	v.SetDefault("embedding.timeout_seconds", 30)
	v.SetDefault("compare.threshold", reconciler.DefaultThreshold)
	v.SetDefault("compare.format", "raw")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetEnvPrefix("semanticjson")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return &cfg, nil
}
