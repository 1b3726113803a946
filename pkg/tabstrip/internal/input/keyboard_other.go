//go:build !linux

package input

import (
	"context"
	"log/slog"
)

// Keyboard is unavailable off Linux.
type Keyboard struct{}

// OpenKeyboard always fails with ErrUnsupported off Linux.
func OpenKeyboard(string, *slog.Logger) (*Keyboard, error) {
	return nil, ErrUnsupported
}

func (k *Keyboard) Run(context.Context, Poster, func(KeyEvent)) error {
	return ErrUnsupported
}

func (k *Keyboard) Close() error {
	return nil
}
