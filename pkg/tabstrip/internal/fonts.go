package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
)

// ErrNoFont is returned when no font file could be opened.
var ErrNoFont = errors.New("no usable font found")

// FontSizes are point sizes before scaling.
type FontSizes struct {
	Title int
	Label int
	Hint  int
}

var DefaultFontSizes = FontSizes{Title: 28, Label: 20, Hint: 14}

// Fonts holds the opened font faces.
type Fonts struct {
	Title *ttf.Font
	Label *ttf.Font
	Hint  *ttf.Font
}

var fonts Fonts

// fallbackFonts are tried when neither FONT_PATH nor the theme names one.
var fallbackFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/mnt/SDCARD/System/fonts/Cannoli.ttf",
}

func fontCandidates(themePath string) []string {
	var paths []string
	if env := os.Getenv(constants.FontPathEnvVar); env != "" {
		paths = append(paths, env)
	}
	if themePath != "" {
		paths = append(paths, themePath)
	}
	return append(paths, fallbackFonts...)
}

func initFonts(themePath string, sizes FontSizes) error {
	scale := GetScaleFactor()
	for _, path := range fontCandidates(themePath) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f, err := openFonts(path, sizes, scale)
		if err != nil {
			logging.GetInternalLogger().Warn("tabstrip: opening font", "path", path, "error", err)
			continue
		}
		logging.GetInternalLogger().Debug("tabstrip: fonts loaded", "path", path, "scale", scale)
		fonts = f
		return nil
	}
	return ErrNoFont
}

func openFonts(path string, sizes FontSizes, scale float64) (Fonts, error) {
	var f Fonts
	var err error
	open := func(size int) *ttf.Font {
		if err != nil {
			return nil
		}
		var font *ttf.Font
		font, err = ttf.OpenFont(path, max(1, int(float64(size)*scale)))
		return font
	}
	f.Title = open(sizes.Title)
	f.Label = open(sizes.Label)
	f.Hint = open(sizes.Hint)
	if err != nil {
		closeFontSet(f)
		return Fonts{}, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

func closeFontSet(f Fonts) {
	for _, font := range []*ttf.Font{f.Title, f.Label, f.Hint} {
		if font != nil {
			font.Close()
		}
	}
}

func closeFonts() {
	closeFontSet(fonts)
	fonts = Fonts{}
}

func GetFonts() Fonts {
	return fonts
}

// GetScaleFactor relates the window height to the 480 line screens the
// default sizes were chosen for.
func GetScaleFactor() float64 {
	if window == nil {
		return 1
	}
	_, h := window.Size()
	return max(1, float64(h)/480)
}

// TextMeasurer measures label text with an SDL_ttf font.
type TextMeasurer struct {
	Font *ttf.Font
}

func (m TextMeasurer) MeasureText(text string) (float64, float64) {
	if m.Font == nil {
		return 0, 0
	}
	if text == "" {
		return 0, float64(m.Font.Height())
	}
	w, h, err := m.Font.SizeUTF8(text)
	if err != nil {
		return 0, float64(m.Font.Height())
	}
	return float64(w), float64(h)
}
