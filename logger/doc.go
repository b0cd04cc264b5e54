// Package logger provides structured logging built on zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("llmrest").WithComponent("completion")
//	log.Info("batch complete", logger.Fields("prompts", 3, "duration_ms", 420))
//
// WithContext enriches a logger with the IDs of the active trace span:
//
//	log.WithContext(ctx).Debug("sending request")
package logger
