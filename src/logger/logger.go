package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger defines the interface for logging throughout the application.
// The CLI output itself never goes through a Logger; logs are diagnostics only.
type Logger interface {
	Info(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// ParseLevel maps a level name to a slog level. The empty string and unknown
// names report ok=false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// ConsoleLogger writes human-readable slog text records to w (normally stderr).
type ConsoleLogger struct {
	log *slog.Logger
}

func NewConsoleLogger(w io.Writer, level slog.Level) *ConsoleLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &ConsoleLogger{log: slog.New(handler)}
}

func (c *ConsoleLogger) Info(msg string, args ...interface{}) {
	c.log.Info(fmt.Sprintf(msg, args...))
}

func (c *ConsoleLogger) Error(msg string, args ...interface{}) {
	c.log.Error(fmt.Sprintf(msg, args...))
}

func (c *ConsoleLogger) Debug(msg string, args ...interface{}) {
	c.log.Debug(fmt.Sprintf(msg, args...))
}

// SilentLogger discards all log messages.
// Used by default so diagnostics never mix with the listing output.
type SilentLogger struct{}

func NewSilentLogger() *SilentLogger {
	return &SilentLogger{}
}

func (s *SilentLogger) Info(msg string, args ...interface{})  {}
func (s *SilentLogger) Error(msg string, args ...interface{}) {}
func (s *SilentLogger) Debug(msg string, args ...interface{}) {}

// New returns a ConsoleLogger on w for a known level name and a SilentLogger otherwise.
func New(w io.Writer, levelName string) Logger {
	level, ok := ParseLevel(levelName)
	if !ok {
		return NewSilentLogger()
	}
	return NewConsoleLogger(w, level)
}
