// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (console for CLI runs, json for the trigger server) and integrates with the
// Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context
// and attaches it to the log entry, so all logs belonging to one upload
// trigger can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Upload run started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
