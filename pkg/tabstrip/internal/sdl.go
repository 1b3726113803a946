package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
)

var window *Window

// Init starts SDL, opens the window and loads fonts. Call it once, from the
// goroutine that will run the UI.
func Init(title string, winOpts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	// Missing image loaders only matter when a PNG icon or background is set.
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		logging.GetInternalLogger().Warn("tabstrip: image loaders unavailable", "error", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
		if !constants.IsDevMode() {
			winOpts.Borderless = true
		}
	}

	w, err := initWindow(title, winOpts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := initFonts(GetTheme().FontPath, DefaultFontSizes); err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return err
	}
	openControllers()
	return nil
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	if window != nil {
		window.closeWindow()
		window = nil
	}
	closeControllers()
	closeFonts()
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	if err := logging.CloseLogger(); err != nil {
		logging.GetInternalLogger().Error("tabstrip: closing log file", "error", err)
	}
}
