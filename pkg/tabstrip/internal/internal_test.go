package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x00, G: 0x80, B: 0x80, A: 0xFF}, HexToColor(0x008080))
	assert.Equal(t, sdl.Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, HexToColor(0xFF123456), "alpha byte is ignored")
}

func TestWindowOptionFlags(t *testing.T) {
	assert.True(t, WindowOptions{}.IsZero())
	assert.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())

	flags := WindowOptions{Borderless: true, Resizable: true, Hidden: true}.ToSDLFlags()
	assert.Zero(t, flags&sdl.WINDOW_SHOWN)
	assert.NotZero(t, flags&sdl.WINDOW_BORDERLESS)
	assert.NotZero(t, flags&sdl.WINDOW_RESIZABLE)
}

func TestPadding(t *testing.T) {
	p := Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	assert.Equal(t, int32(6), p.Horizontal())
	assert.Equal(t, int32(4), p.Vertical())

	x, y, w, h := p.Inset(10, 10, 100, 2)
	assert.Equal(t, []int32{14, 11, 94, 0}, []int32{x, y, w, h})
	assert.Equal(t, Padding{5, 5, 5, 5}, UniformPadding(5))
}

func TestKeyTranslation(t *testing.T) {
	assert.Equal(t, constants.KeyArrowRight, KeyFromKeycode(sdl.K_RIGHT))
	assert.Equal(t, constants.KeyEnter, KeyFromKeycode(sdl.K_KP_ENTER))
	assert.Equal(t, constants.KeyUnassigned, KeyFromKeycode(sdl.K_F1))
	assert.Equal(t, constants.KeyHome, KeyFromButton(sdl.CONTROLLER_BUTTON_LEFTSHOULDER))
	assert.Equal(t, constants.KeySpace, KeyFromButton(sdl.CONTROLLER_BUTTON_A))

	key, pressed, ok := TranslateEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_END}})
	assert.True(t, ok)
	assert.True(t, pressed)
	assert.Equal(t, constants.KeyEnd, key)

	_, _, ok = TranslateEvent(&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_END}})
	assert.False(t, ok, "OS repeats are dropped")

	key, pressed, ok = TranslateEvent(&sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Button: uint8(sdl.CONTROLLER_BUTTON_B)})
	assert.True(t, ok)
	assert.False(t, pressed)
	assert.Equal(t, constants.KeyEscape, key)

	_, _, ok = TranslateEvent(&sdl.QuitEvent{})
	assert.False(t, ok)
}

func TestTextMeasurerWithoutFont(t *testing.T) {
	w, h := TextMeasurer{}.MeasureText("Inbox")
	assert.Zero(t, w)
	assert.Zero(t, h)
}
