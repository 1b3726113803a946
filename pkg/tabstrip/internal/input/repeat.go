// Package input turns held keys into repeated key presses and reads raw
// keyboards through evdev.
package input

import (
	"time"

	"github.com/BrandonKowalski/tabstrip/pkg/tabstrip/constants"
)

// Repeater tracks held navigation keys and decides when a held key fires
// again.
type Repeater struct {
	held        map[constants.Key]time.Time
	order       []constants.Key
	lastRepeat  time.Time
	delay       time.Duration
	interval    time.Duration
	hasRepeated bool
}

// NewRepeater creates a Repeater with the default timing: 300ms before the
// first repeat, then 50ms between repeats.
func NewRepeater() *Repeater {
	return NewRepeaterWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

// NewRepeaterWithTiming creates a Repeater with custom timing.
func NewRepeaterWithTiming(delay, interval time.Duration) *Repeater {
	return &Repeater{
		held:     make(map[constants.Key]time.Time),
		delay:    delay,
		interval: interval,
	}
}

// Repeats reports whether holding k should repeat it. Space, Enter and Tab
// fire once per press.
func Repeats(k constants.Key) bool {
	return k.IsArrow() || k == constants.KeyHome || k == constants.KeyEnd
}

// Press records k as held at now. It returns false for keys that don't
// repeat.
func (r *Repeater) Press(k constants.Key, now time.Time) bool {
	if !Repeats(k) {
		return false
	}
	if _, ok := r.held[k]; !ok {
		r.order = append(r.order, k)
	}
	r.held[k] = now
	r.lastRepeat = now
	r.hasRepeated = false
	return true
}

// Release forgets k.
func (r *Repeater) Release(k constants.Key) {
	if _, ok := r.held[k]; !ok {
		return
	}
	delete(r.held, k)
	for i, o := range r.order {
		if o == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.hasRepeated = false
}

// Held returns the most recently pressed key still held.
func (r *Repeater) Held() constants.Key {
	if len(r.order) == 0 {
		return constants.KeyUnassigned
	}
	return r.order[len(r.order)-1]
}

// Update returns the key to repeat at now, or KeyUnassigned. Call it once
// per frame.
func (r *Repeater) Update(now time.Time) constants.Key {
	k := r.Held()
	if k == constants.KeyUnassigned {
		r.lastRepeat = now
		r.hasRepeated = false
		return constants.KeyUnassigned
	}

	threshold := r.interval
	if !r.hasRepeated {
		threshold = r.delay
	}
	if now.Sub(r.lastRepeat) < threshold {
		return constants.KeyUnassigned
	}
	r.lastRepeat = now
	r.hasRepeated = true
	return k
}

// Reset forgets every held key.
func (r *Repeater) Reset() {
	clear(r.held)
	r.order = r.order[:0]
	r.hasRepeated = false
}
