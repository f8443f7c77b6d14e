package logger

import (
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var globalLogger logr.Logger

// Init initializes the global logger. Output goes to stderr so that stdio
// MCP framing on stdout is never corrupted. Verbosity is read from
// DATABRICKS_MCP_LOG_LEVEL (integer, higher is chattier).
func Init() {
	if v, err := strconv.Atoi(os.Getenv("DATABRICKS_MCP_LOG_LEVEL")); err == nil {
		stdr.SetVerbosity(v)
	}
	globalLogger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// Get returns the global logger instance
func Get() logr.Logger {
	if globalLogger.GetSink() == nil {
		Init()
	}
	return globalLogger
}

// LogAPIRequest logs an outbound Databricks API call. Request bodies are
// never logged; they may contain notebook source or credential material.
func LogAPIRequest(method, path string, attempt int) {
	Get().V(1).Info("databricks api request",
		"method", method,
		"path", path,
		"attempt", attempt,
	)
}

// LogAPIResult logs the terminal outcome of an outbound Databricks API call.
func LogAPIResult(method, path string, status int, attempts int, err error) {
	logger := Get()
	if err != nil {
		logger.Error(err, "databricks api call failed",
			"method", method,
			"path", path,
			"status", status,
			"attempts", attempts,
		)
		return
	}
	logger.V(1).Info("databricks api call succeeded",
		"method", method,
		"path", path,
		"status", status,
		"attempts", attempts,
	)
}

// Sync is a no-op for logr/stdr
func Sync() {}
