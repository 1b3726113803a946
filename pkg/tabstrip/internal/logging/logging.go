// Package logging holds the two slog loggers the module writes to: the
// application logger handed to callers and the internal logger used by the
// SDL layer and the strip core.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

var (
	mu      sync.Mutex
	logPath string
	output  io.Writer
	logFile *os.File

	levelVar         = &slog.LevelVar{}
	internalLevelVar = newInternalLevel()

	logger         *slog.Logger
	internalLogger *slog.Logger
)

func newInternalLevel() *slog.LevelVar {
	lv := &slog.LevelVar{}
	if os.Getenv(constants.DebugEnvVar) != "" {
		lv.Set(slog.LevelDebug)
	} else {
		lv.Set(slog.LevelError)
	}
	return lv
}

// SetLogPath sets the log file, including filename. Parent directories are
// created on first use. Loggers created earlier keep their writer.
func SetLogPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	logPath = path
}

// SetOutput replaces the destination of both loggers. Passing nil goes back
// to stdout plus the log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	logger = nil
	internalLogger = nil
}

func writer() io.Writer {
	if output != nil {
		return output
	}
	if logPath == "" {
		output = os.Stdout
		return output
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		output = os.Stdout
		return output
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		output = os.Stdout
		return output
	}
	logFile = f
	output = io.MultiWriter(os.Stdout, f)
	return output
}

func newLogger(level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewJSONHandler(writer(), &slog.HandlerOptions{Level: level}))
}

// GetLogger returns the application logger.
func GetLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newLogger(levelVar)
	}
	return logger
}

// GetInternalLogger returns the logger used inside the module. It logs at
// error level unless TABSTRIP_DEBUG is set.
func GetInternalLogger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if internalLogger == nil {
		internalLogger = newLogger(internalLevelVar)
	}
	return internalLogger
}

func SetLogLevel(level slog.Level) {
	levelVar.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLevelVar.Set(level)
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLogLevel parses and applies the application log level.
func SetRawLogLevel(raw string) {
	levelVar.Set(ParseLevel(raw))
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	output = nil
	logger = nil
	internalLogger = nil
	return err
}
