// Package tabstrip renders an accessible animated tab strip in an SDL window
// on desktop and handheld Linux devices.
//
// The strip itself lives in the tabs package and has no SDL dependency. This
// package owns the window, fonts, input and drawing, and exposes TabStrip as
// a blocking screen in the style of the other components.
package tabstrip

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/tabs"
)

// Options configures initialization.
type Options struct {
	WindowTitle         string                 // Window title displayed in windowed mode
	WindowOptions       internal.WindowOptions // SDL window flags (borderless, resizable, etc.)
	AccentColorHex      uint32                 // Indicator color, 0 keeps the theme's
	FontPath            string                 // UI font; FONT_PATH overrides it
	BackgroundImagePath string                 // Optional image drawn behind the strip
	LogPath             string                 // Full path for log file including filename (creates parent directories)
	ReducedMotion       bool                   // Skip indicator animations and smooth scrolling
}

// Init starts SDL and opens the window. It must be called before TabStrip,
// from the goroutine that will run the UI.
func Init(options Options) error {
	if options.LogPath != "" {
		logging.SetLogPath(options.LogPath)
	}
	if os.Getenv(constants.DebugEnvVar) != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	}

	theme := internal.DefaultTheme(options.FontPath)
	theme.BackgroundImagePath = options.BackgroundImagePath
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	if options.ReducedMotion {
		tabs.SetReducedMotion(true)
	}

	if err := internal.Init(options.WindowTitle, options.WindowOptions); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources. Call it before the program exits.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init to take effect during initialization.
func SetLogPath(path string) {
	logging.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

// GetWindow returns the underlying SDL window wrapper for advanced use cases.
func GetWindow() *internal.Window {
	return internal.GetWindow()
}
