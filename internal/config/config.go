package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/GriffinCanCode/filemanager/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filemanager/internal/providers/filesystem"
	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
)

// Config holds all application configuration.
type Config struct {
	Logging     LogConfig
	Hash        HashConfig
	Compression CompressionConfig
	Metrics     MetricsConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"FM_LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"FM_LOG_DEV" default:"false"`
	Output      string `envconfig:"FM_LOG_OUTPUT" default:"stderr"`
}

// HashConfig selects the digest used by the hash command.
type HashConfig struct {
	Algorithm string `envconfig:"FM_HASH_ALGORITHM" default:"sha256"`
}

// CompressionConfig tunes the compress command.
type CompressionConfig struct {
	Level string `envconfig:"FM_COMPRESSION_LEVEL" default:"default"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	File string `envconfig:"FM_METRICS_FILE" default:""`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Logging: LogConfig{
			Level:       "warn",
			Development: false,
			Output:      "stderr",
		},
		Hash: HashConfig{
			Algorithm: string(utils.SHA256),
		},
		Compression: CompressionConfig{
			Level: "default",
		},
	}
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid FM_LOG_LEVEL: %w", err)
	}
	if _, err := utils.ParseHashAlgorithm(c.Hash.Algorithm); err != nil {
		return fmt.Errorf("invalid FM_HASH_ALGORITHM: %w", err)
	}
	if _, err := filesystem.ParseCompressionLevel(c.Compression.Level); err != nil {
		return fmt.Errorf("invalid FM_COMPRESSION_LEVEL: %w", err)
	}
	return nil
}

// LoggerConfig converts the logging section to a logger configuration.
func (l LogConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if l.Level != "" {
		cfg.Level = l.Level
	}
	cfg.Development = l.Development
	if l.Output != "" {
		cfg.OutputPaths = []string{l.Output}
	}
	return cfg
}

// Hasher builds the digest service selected by the hash section.
func (h HashConfig) Hasher() *utils.Hasher {
	alg, err := utils.ParseHashAlgorithm(h.Algorithm)
	if err != nil {
		return utils.DefaultHasher()
	}
	return utils.NewHasher(alg)
}

// Codec builds the compression codec selected by the compression section.
func (c CompressionConfig) Codec() *filesystem.Codec {
	level, err := filesystem.ParseCompressionLevel(c.Level)
	if err != nil {
		return filesystem.NewCodec(filesystem.LevelDefault)
	}
	return filesystem.NewCodec(level)
}
