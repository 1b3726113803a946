package internal

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// Theme holds the colors and font the strip is drawn with.
type Theme struct {
	BackgroundColor     sdl.Color // Screen background
	SurfaceColor        sdl.Color // Strip background
	TextColor           sdl.Color // Unselected labels and icons
	SelectedTextColor   sdl.Color // Selected label and icon
	DisabledTextColor   sdl.Color // Labels of disabled tabs
	AccentColor         sdl.Color // Indicator bar and pill
	FocusColor          sdl.Color // Focus ring around the focused tab
	HintColor           sdl.Color // Footer hints
	FontPath            string    // Path to the UI font
	BackgroundImagePath string    // Optional background image
}

var currentTheme = DefaultTheme("")

// DefaultTheme is a dark theme with a teal accent.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor:   HexToColor(0x101418),
		SurfaceColor:      HexToColor(0x1C2228),
		TextColor:         HexToColor(0xC8D0D8),
		SelectedTextColor: HexToColor(0xFFFFFF),
		DisabledTextColor: HexToColor(0x5C646C),
		AccentColor:       HexToColor(0x008080),
		FocusColor:        HexToColor(0x80C0C0),
		HintColor:         HexToColor(0x8C949C),
		FontPath:          fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// RGBA converts c for use with image/draw.
func RGBA(c sdl.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return currentTheme
}
