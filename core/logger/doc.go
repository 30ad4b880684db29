// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different
// environments (development vs production). CLI commands use console
// encoding; the report server typically uses json.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console (development) or json (production)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Export completed", zap.Int("items", n))
//
//	// In a request handler:
//	l := logger.WithRequest(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
