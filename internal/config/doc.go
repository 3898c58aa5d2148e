// Package config provides environment-driven configuration for the file
// manager's ambient concerns.
//
// Only operational knobs live here: logging, the digest used by `hash`, the
// encoder level used by `compress`, and an optional metrics textfile. Nothing
// is persisted, and no setting changes the meaning of a console command.
//
// Configuration Sections:
//   - Logging: Log level, encoder and output path
//   - Hash: Digest algorithm for the hash command
//   - Compression: zstd encoder level for the compress command
//   - Metrics: Prometheus textfile written at shutdown
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, err := logging.New(cfg.Logging.LoggerConfig())
//
// Environment Variables:
//   - FM_LOG_LEVEL, FM_LOG_DEV, FM_LOG_OUTPUT
//   - FM_HASH_ALGORITHM
//   - FM_COMPRESSION_LEVEL
//   - FM_METRICS_FILE
package config
