package core

import "time"

// MaxFrameDelta caps a single simulation step. A stalled terminal or a
// suspended process would otherwise teleport bugs through Ferris.
const MaxFrameDelta = 100 * time.Millisecond

// FrameDelta returns the seconds between two frames, clamped to
// [0, MaxFrameDelta]. A zero prev marks the first frame and yields 0.
func FrameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d < 0 {
		d = 0
	}
	if d > MaxFrameDelta {
		d = MaxFrameDelta
	}
	return d.Seconds()
}
