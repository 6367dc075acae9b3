package logx

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level represents logging level
type Level = zapcore.Level

const (
	// LevelDebug for debugging information
	LevelDebug = zapcore.DebugLevel
	// LevelInfo for informational messages
	LevelInfo = zapcore.InfoLevel
	// LevelWarn for warning messages
	LevelWarn = zapcore.WarnLevel
	// LevelError for error messages
	LevelError = zapcore.ErrorLevel
	// LevelFatal for fatal messages (will exit)
	LevelFatal = zapcore.FatalLevel
)

// ParseLevel parses a string into a Level. Unknown strings fall back to info.
func ParseLevel(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "trace":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Format represents the output format
type Format string

const (
	// FormatConsole outputs human-readable console logs (default)
	FormatConsole Format = "console"
	// FormatJSON outputs JSON formatted logs
	FormatJSON Format = "json"
)

// Config holds the logger configuration
type Config struct {
	// Level is the minimum log level to output
	Level Level

	// Format is the output format
	Format Format

	// EnableCaller adds file and line number to logs
	EnableCaller bool

	// Output is where to write logs (defaults to os.Stdout)
	Output *os.File
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Format: FormatConsole,
		Output: os.Stdout,
	}
}

// LoadFromEnv loads configuration from environment variables
// (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
func LoadFromEnv() *Config {
	config := DefaultConfig()

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Level = ParseLevel(v)
	}
	if v := strings.ToLower(os.Getenv("LOG_FORMAT")); v == string(FormatJSON) {
		config.Format = FormatJSON
	}
	if v := strings.ToLower(os.Getenv("LOG_CALLER")); v == "true" || v == "1" {
		config.EnableCaller = true
	}

	return config
}
