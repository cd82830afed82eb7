// Copyright 2026 The Lexical Analyzer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil configures the process-wide slog logger from flags and
// config values.
package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

// Logger holds logging configuration and the slog instance built from it.
type Logger struct {
	// Logging configuration flags
	logLevel  string
	logFormat string
	logOutput string

	// Internal state
	loggerOnce sync.Once
	logger     *slog.Logger
	loggerMu   sync.Mutex
}

// NewLogger returns a Logger with CLI-appropriate defaults: human-readable
// text on stderr, so report output on stdout stays clean.
func NewLogger() *Logger {
	return &Logger{
		logLevel:  "info",
		logFormat: "text",
		logOutput: "stderr",
	}
}

// RegisterFlags registers logging-related command line flags.
// This must be called before flag parsing if using the logging system.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.StringVar(&lg.logLevel, "log-level", lg.logLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&lg.logFormat, "log-format", lg.logFormat, "Log format (json, text)")
	fs.StringVar(&lg.logOutput, "log-output", lg.logOutput, "Log output (stdout, stderr, or file path)")
}

// Configure overrides the logging settings with resolved config values.
// Empty strings leave the current setting in place. It has no effect once
// SetupLogging has run.
func (lg *Logger) Configure(level, format, output string) {
	if level != "" {
		lg.logLevel = level
	}
	if format != "" {
		lg.logFormat = format
	}
	if output != "" {
		lg.logOutput = output
	}
}

// SetupLogging initializes the logger based on the configured flags.
// This should be called after flags are parsed but before any logging occurs.
func (lg *Logger) SetupLogging() {
	lg.loggerOnce.Do(func() {
		// Parse log level with fallback to default
		var level slog.Level
		levelStr := lg.logLevel
		if levelStr == "" {
			levelStr = "info" // Default fallback
		}
		switch strings.ToLower(levelStr) {
		case "debug":
			level = slog.LevelDebug
		case "info":
			level = slog.LevelInfo
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		default:
			level = slog.LevelInfo
		}

		// Determine output writer with fallback to stderr
		var output io.Writer
		outputStr := lg.logOutput
		if outputStr == "" {
			outputStr = "stderr" // Default fallback
		}
		switch strings.ToLower(outputStr) {
		case "stdout":
			output = os.Stdout
		case "stderr":
			output = os.Stderr
		default:
			// Treat as file path
			file, err := os.OpenFile(outputStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				// Fallback to stderr if file creation fails
				output = os.Stderr
			} else {
				output = file
			}
		}

		// Create handler based on format with fallback to text
		var handler slog.Handler
		formatStr := lg.logFormat
		if formatStr == "" {
			formatStr = "text" // Default fallback
		}
		switch strings.ToLower(formatStr) {
		case "json":
			handler = slog.NewJSONHandler(output, &slog.HandlerOptions{
				Level: level,
			})
		default:
			handler = slog.NewTextHandler(output, &slog.HandlerOptions{
				Level: level,
			})
		}

		// Create logger
		newLogger := slog.New(handler)

		// Set as default slog logger
		slog.SetDefault(newLogger)

		// Store logger
		lg.loggerMu.Lock()
		lg.logger = newLogger
		lg.loggerMu.Unlock()

		newLogger.Debug("logging initialized",
			"level", levelStr,
			"format", formatStr,
			"output", outputStr,
		)
	})
}

// GetLogger returns the configured logger instance.
// SetupLogging must be called before this function.
func (lg *Logger) GetLogger() *slog.Logger {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.logger == nil {
		// Return default slog logger if our logger hasn't been set up yet
		return slog.Default()
	}
	return lg.logger
}

// GetLogLevel returns the current log level setting.
func (lg *Logger) GetLogLevel() string {
	return lg.logLevel
}

// GetLogFormat returns the current log format setting.
func (lg *Logger) GetLogFormat() string {
	return lg.logFormat
}

// GetLogOutput returns the current log output setting.
func (lg *Logger) GetLogOutput() string {
	return lg.logOutput
}
