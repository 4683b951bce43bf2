// Package logger wraps zerolog behind a small package-level API. Output goes
// to a log file under the state directory; console output is off by default
// so it never interferes with the TUI.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is a shorthand for creating a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Config holds logger configuration.
type Config struct {
	Level    string // DEBUG, INFO, WARN, ERROR
	FilePath string // Path to log file; empty disables file output
	MaxSize  int64  // Max file size in bytes before the file is rolled to .1
	Console  bool   // Also write to stderr (human-readable)
}

// DefaultConfig returns default logger configuration.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	logPath := ""
	if home != "" {
		logPath = filepath.Join(home, ".confide", "logs", "confide.log")
	}
	return Config{
		Level:    "INFO",
		FilePath: logPath,
		MaxSize:  10 * 1024 * 1024,
		Console:  false,
	}
}

var (
	global zerolog.Logger = zerolog.Nop()
	file   *os.File
	once   sync.Once
)

// ParseLevel converts a level string to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init initializes the global logger. Safe to call more than once; only the
// first call takes effect.
func Init(config Config) error {
	var initErr error
	once.Do(func() {
		var writers []io.Writer

		if config.FilePath != "" {
			if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
				initErr = fmt.Errorf("failed to create log directory: %w", err)
				return
			}
			rollIfOversized(config.FilePath, config.MaxSize)
			f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
			if err != nil {
				initErr = fmt.Errorf("failed to open log file: %w", err)
				return
			}
			file = f
			writers = append(writers, f)
		}
		if config.Console {
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		if len(writers) == 0 {
			return
		}

		global = zerolog.New(io.MultiWriter(writers...)).
			Level(ParseLevel(config.Level)).
			With().Timestamp().Logger()
	})
	return initErr
}

// rollIfOversized moves an oversized log file aside to <path>.1 so the file
// never grows without bound.
func rollIfOversized(path string, maxSize int64) {
	if maxSize <= 0 {
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() < maxSize {
		return
	}
	_ = os.Rename(path, path+".1")
}

func emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}

// Debug logs a debug message.
func Debug(msg string, fields ...Field) { emit(global.Debug(), msg, fields) }

// Info logs an info message.
func Info(msg string, fields ...Field) { emit(global.Info(), msg, fields) }

// Warn logs a warning message.
func Warn(msg string, fields ...Field) { emit(global.Warn(), msg, fields) }

// Error logs an error message.
func Error(msg string, fields ...Field) { emit(global.Error(), msg, fields) }

// Close closes the log file if one is open.
func Close() error {
	if file != nil {
		return file.Close()
	}
	return nil
}
