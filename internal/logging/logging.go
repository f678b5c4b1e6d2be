package logging

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.liarsbid/logs/liarsbid.log
// Uses text format for human readability. Every record carries the session id
// so interleaved runs in the appended file can be told apart.
func Init(level slog.Level) (func() error, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("find home directory: %w", err)
	}
	return InitAt(filepath.Join(homeDir, ".liarsbid", "logs"), level)
}

// InitAt is Init with an explicit log directory.
func InitAt(logDir string, level slog.Level) (func() error, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "liarsbid.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
	})

	Logger = slog.New(handler).With("session", uuid.NewString())
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags) // Include timestamp

	return file.Close, nil
}

// Get returns the application logger, or slog's default before Init.
func Get() *slog.Logger {
	if Logger == nil {
		return slog.Default()
	}
	return Logger
}
