// Package logger provides a small factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by Option functions. These options
// allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level and the output writer
//   • Supply default slog.Attr values applied to every record
//
// ParseLevel and ParseFormat turn configuration strings into options, and
// Discard returns a logger that drops everything, which is what the
// requirements package uses unless logging is configured.
//
// Helper constructors such as Group, Error, Subject and Kind live in attr.go
// and keep attribute naming consistent across the codebase.
//
// # Usage
//
//	import "github.com/dmitrymomot/requirements/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("billing")),
//	)
//	log.Debug("validation failed", logger.Subject("amount"), logger.Kind("violation"))
package logger
