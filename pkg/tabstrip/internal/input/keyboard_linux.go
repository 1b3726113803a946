//go:build linux

package input

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

var keyCodes = map[evdev.EvCode]constants.Key{
	evdev.KEY_LEFT:  constants.KeyArrowLeft,
	evdev.KEY_RIGHT: constants.KeyArrowRight,
	evdev.KEY_UP:    constants.KeyArrowUp,
	evdev.KEY_DOWN:  constants.KeyArrowDown,
	evdev.KEY_HOME:  constants.KeyHome,
	evdev.KEY_END:   constants.KeyEnd,
	evdev.KEY_SPACE: constants.KeySpace,
	evdev.KEY_ENTER: constants.KeyEnter,
	evdev.KEY_ESC:   constants.KeyEscape,
	evdev.KEY_TAB:   constants.KeyTab,
}

// translate maps a raw evdev event to a KeyEvent. Non-key events and keys
// the strip doesn't use report false.
func translate(e *evdev.InputEvent) (KeyEvent, bool) {
	if e == nil || e.Type != evdev.EV_KEY {
		return KeyEvent{}, false
	}
	k, ok := keyCodes[e.Code]
	if !ok {
		return KeyEvent{}, false
	}
	// Value is 0 on release, 1 on press and 2 on autorepeat.
	return KeyEvent{Key: k, Pressed: e.Value != 0, Repeat: e.Value == 2}, true
}

// Keyboard reads key events from an evdev device node.
type Keyboard struct {
	path   string
	dev    *evdev.InputDevice
	closed *atomic.Bool
	log    *slog.Logger
}

// OpenKeyboard opens the evdev device at path, e.g. /dev/input/event0.
func OpenKeyboard(path string, logger *slog.Logger) (*Keyboard, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: open %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	if name, err := dev.Name(); err == nil {
		logger.Debug("input: keyboard opened", "path", path, "name", name)
	}
	return &Keyboard{path: path, dev: dev, closed: atomic.NewBool(false), log: logger}, nil
}

// Run reads events until ctx is done or the device fails, handing each
// translated event to handle on the loop through p. Run blocks; start it on
// its own goroutine.
func (k *Keyboard) Run(ctx context.Context, p Poster, handle func(KeyEvent)) error {
	go func() {
		<-ctx.Done()
		_ = k.Close()
	}()
	for {
		e, err := k.dev.ReadOne()
		if err != nil {
			if k.closed.Load() || errors.Is(err, os.ErrClosed) {
				return ctx.Err()
			}
			return fmt.Errorf("input: read %s: %w", k.path, err)
		}
		ev, ok := translate(e)
		if !ok {
			continue
		}
		p.Post(func() { handle(ev) })
	}
}

// Close releases the device. It is safe to call more than once.
func (k *Keyboard) Close() error {
	if !k.closed.CompareAndSwap(false, true) {
		return nil
	}
	return k.dev.Close()
}
