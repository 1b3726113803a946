package input

import (
	"errors"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

// ErrUnsupported is returned by OpenKeyboard where evdev is unavailable.
var ErrUnsupported = errors.New("input: raw keyboard devices are not supported on this platform")

// KeyEvent is one press or release read from a raw keyboard.
type KeyEvent struct {
	Key     constants.Key
	Pressed bool
	Repeat  bool
}

// Poster queues a function on the loop that owns the strip. frame.Scheduler
// satisfies it.
type Poster interface {
	Post(fn func())
}
