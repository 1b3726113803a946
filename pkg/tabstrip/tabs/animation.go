package tabs

import (
	"math"
	"time"
)

// Transform is a translate followed by a scale, both about the indicator's
// leading edge.
type Transform struct {
	TranslateX, TranslateY float64
	ScaleX, ScaleY         float64
}

// Identity is the transform that leaves the indicator unchanged.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// IsIdentity reports whether t leaves the indicator unchanged.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

func (t Transform) lerp(to Transform, p float64) Transform {
	return Transform{
		TranslateX: lerp(t.TranslateX, to.TranslateX, p),
		TranslateY: lerp(t.TranslateY, to.TranslateY, p),
		ScaleX:     lerp(t.ScaleX, to.ScaleX, p),
		ScaleY:     lerp(t.ScaleY, to.ScaleY, p),
	}
}

// Apply maps r through the transform.
func (t Transform) Apply(r Rect) Rect {
	return Rect{
		X: r.X + t.TranslateX,
		Y: r.Y + t.TranslateY,
		W: r.W * t.ScaleX,
		H: r.H * t.ScaleY,
	}
}

// Keyframe is one end of an indicator animation.
type Keyframe struct {
	Opacity   float64
	Transform Transform
}

var (
	hidden  = Keyframe{Opacity: 0, Transform: Identity}
	showing = Keyframe{Opacity: 1, Transform: Identity}
	scaled  = Keyframe{Opacity: 0, Transform: Transform{ScaleX: 0.5, ScaleY: 1}}
)

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// EaseOut is the CSS ease-out curve, cubic-bezier(0, 0, 0.58, 1).
var EaseOut = CubicBezier(0, 0, 0.58, 1)

// CubicBezier returns the easing described by the CSS control points.
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	bezier := func(t, p1, p2 float64) float64 {
		u := 1 - t
		return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		t := x
		for i := 0; i < 32; i++ {
			got := bezier(t, x1, x2)
			if math.Abs(got-x) < 1e-6 {
				break
			}
			if got < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bezier(t, y1, y2)
	}
}

// Animation plays two keyframes over a duration.
type Animation struct {
	From, To Keyframe
	Duration time.Duration
	Easing   Easing

	start     time.Time
	cancelled bool
}

func newAnimation(frames [2]Keyframe, start time.Time, d time.Duration, easing Easing) *Animation {
	return &Animation{From: frames[0], To: frames[1], Duration: d, Easing: easing, start: start}
}

// Start returns when the animation began.
func (a *Animation) Start() time.Time {
	return a.start
}

// Cancel stops the animation; Sample returns the final keyframe afterwards.
func (a *Animation) Cancel() {
	a.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (a *Animation) Cancelled() bool {
	return a.cancelled
}

// Finished reports whether the animation is over at now.
func (a *Animation) Finished(now time.Time) bool {
	return a.cancelled || now.Sub(a.start) >= a.Duration
}

// Progress returns the eased progress at now.
func (a *Animation) Progress(now time.Time) float64 {
	if a.Finished(now) || a.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(a.start)) / float64(a.Duration)
	if p < 0 {
		p = 0
	}
	if a.Easing != nil {
		p = a.Easing(p)
	}
	return p
}

// Sample returns the interpolated keyframe at now.
func (a *Animation) Sample(now time.Time) Keyframe {
	p := a.Progress(now)
	return Keyframe{
		Opacity:   lerp(a.From.Opacity, a.To.Opacity, p),
		Transform: a.From.Transform.lerp(a.To.Transform, p),
	}
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}
