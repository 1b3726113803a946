package tabs

import (
	"os"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

// reducedMotion is read on the loop but may be flipped from anywhere, e.g. a
// settings watcher.
var reducedMotion = atomic.NewBool(os.Getenv(constants.ReducedMotionEnvVar) != "")

// SetReducedMotion sets the reduced-motion preference. While set, indicator
// animations are skipped and scrolling jumps instead of gliding.
func SetReducedMotion(reduce bool) {
	reducedMotion.Store(reduce)
}

// ReducedMotion reports the reduced-motion preference.
func ReducedMotion() bool {
	return reducedMotion.Load()
}
