// Package logging provides structured logging using uber/zap.
//
// Two encoders are available:
//   - Production: JSON lines for machine parsing
//   - Development: colored console output for humans
//
// The file manager's stdout is reserved for the interactive console, so every
// logger built here writes to stderr (or a file) instead. Operation failures
// are shown to the user as a generic "Operation failed"; the underlying cause
// is recorded here at debug level.
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	cmdLog := logger.ForCommand(cmdID, "cp", []string{"a.txt", "b.txt"})
//	cmdLog.Debug("operation failed", zap.Error(err))
package logging
