// Package logger provides structured logging using zerolog.
//
// It supports JSON and console output formats, log level configuration,
// and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("restclient")
//	log.Info("request completed", logger.Fields("status", 200))
package logger
