package tabstrip

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of the strip (Escape or B).
// This is normal flow control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

var errNotInitialized = errors.New("Init has not been called")

// InfrastructureError reports a failure of the SDL layer itself: the window,
// fonts or textures could not be created. Callers generally can't recover
// from these at the domain level.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "render_label")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tabstrip: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tabstrip: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
