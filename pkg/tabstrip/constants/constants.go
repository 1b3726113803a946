// Package constants defines shared constants, types, and configuration values
// used throughout the tabstrip module.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the module.
const (
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	WindowWidthEnvVar    = "WINDOW_WIDTH"
	WindowHeightEnvVar   = "WINDOW_HEIGHT"
	FontPathEnvVar       = "FONT_PATH"
	ReducedMotionEnvVar  = "REDUCED_MOTION"
	DebugEnvVar          = "TABSTRIP_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Key is the platform-independent name of a keyboard key, using the same
// names browsers report in KeyboardEvent.key.
type Key string

const (
	KeyUnassigned Key = ""
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeySpace      Key = "Space"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyTab        Key = "Tab"
)

// IsArrow reports whether k is one of the four arrow keys.
func (k Key) IsArrow() bool {
	switch k {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown:
		return true
	}
	return false
}

// IsPrevious reports whether k moves toward the start of a strip.
func (k Key) IsPrevious() bool {
	return k == KeyArrowLeft || k == KeyArrowUp
}

// IsNext reports whether k moves toward the end of a strip.
func (k Key) IsNext() bool {
	return k == KeyArrowRight || k == KeyArrowDown
}

func (k Key) String() string {
	if k == KeyUnassigned {
		return "Unassigned"
	}
	return string(k)
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Defaults shared by the core and the presentation layer.
const (
	DefaultScrollMargin       = 48.0                   // Space kept visible around a scrolled-to tab
	DefaultAnimationDuration  = 400 * time.Millisecond // Indicator transition length
	DefaultScrollDuration     = 250 * time.Millisecond // Smooth scroll length
	DefaultFrameInterval      = 16 * time.Millisecond  // Target frame pacing without VSync
	DefaultInputDelay         = 20 * time.Millisecond  // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                      // Vertical spacing below title text
)
