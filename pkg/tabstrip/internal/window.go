package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/internal/logging"
)

// Window wraps the SDL window and renderer the strip draws into.
type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	Background *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64
}

// WindowOptions maps onto SDL window flags.
type WindowOptions struct {
	Borderless        bool // SDL_WINDOW_BORDERLESS
	Resizable         bool // SDL_WINDOW_RESIZABLE
	Fullscreen        bool // SDL_WINDOW_FULLSCREEN
	FullscreenDesktop bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	AlwaysOnTop       bool // SDL_WINDOW_ALWAYS_ON_TOP
	HighDPI           bool // SDL_WINDOW_ALLOW_HIGHDPI
	Hidden            bool // omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32
	set := func(on bool, flag uint32) {
		if on {
			flags |= flag
		}
	}
	set(!wo.Hidden, sdl.WINDOW_SHOWN)
	set(wo.Resizable, sdl.WINDOW_RESIZABLE)
	set(wo.Borderless, sdl.WINDOW_BORDERLESS)
	set(wo.Fullscreen, sdl.WINDOW_FULLSCREEN)
	set(wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP)
	set(wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP)
	set(wo.HighDPI, sdl.WINDOW_ALLOW_HIGHDPI)
	return flags
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := int32(1024), int32(768)
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
	} else {
		logging.GetInternalLogger().Error("tabstrip: reading display mode", "error", err)
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	logging.GetInternalLogger().Debug("tabstrip: creating window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		logging.GetInternalLogger().Warn("tabstrip: accelerated renderer unavailable", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	win := &Window{
		Window:   w,
		Renderer: renderer,
		Title:    title,
		hasVSync: err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0,
	}
	win.loadBackground()
	return win, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logging.GetInternalLogger().Warn("tabstrip: invalid window dimension; using default", "env", name, "value", v)
		return fallback
	}
	return int32(n)
}

func (w *Window) loadBackground() {
	path := GetTheme().BackgroundImagePath
	if env := os.Getenv(constants.BackgroundPathEnvVar); env != "" {
		path = env
	}
	if path == "" {
		return
	}
	tex, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		logging.GetInternalLogger().Warn("tabstrip: loading background", "path", path, "error", err)
		return
	}
	w.Background = tex
}

func (w *Window) closeWindow() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size reports the renderer output size, which differs from the window size
// on high DPI displays.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// Clear fills the frame with the theme background, then the background
// image when one is loaded.
func (w *Window) Clear() {
	c := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()
	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{W: width, H: height})
	}
}

// Present swaps the render buffer and paces frames when VSync is not
// available.
func (w *Window) Present() {
	w.Renderer.Present()
	if w.hasVSync {
		return
	}
	interval := uint64(constants.DefaultFrameInterval.Milliseconds())
	now := sdl.GetTicks64()
	if elapsed := now - w.lastPresentTime; elapsed < interval {
		sdl.Delay(uint32(interval - elapsed))
	}
	w.lastPresentTime = sdl.GetTicks64()
}
