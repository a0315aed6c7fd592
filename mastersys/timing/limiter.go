package timing

import (
	"fmt"
	"time"
)

// Limiter controls frame rate timing for emulation.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// Kind names a limiter implementation.
type Kind string

const (
	KindAdaptive Kind = "adaptive"
	KindTicker   Kind = "ticker"
	KindNone     Kind = "none"
)

// New returns the limiter of the given kind.
func New(kind Kind) (Limiter, error) {
	switch kind {
	case KindAdaptive, "":
		return NewAdaptiveLimiter(), nil
	case KindTicker:
		return NewTickerLimiter(), nil
	case KindNone:
		return NewNoOpLimiter(), nil
	}
	return nil, fmt.Errorf("unknown frame limiter %q", kind)
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// NTSC console timing
const (
	CPUFrequency   = 3579545
	CyclesPerLine  = 228
	LinesPerFrame  = 262
	CyclesPerFrame = CyclesPerLine * LinesPerFrame
)

// TargetFPS calculates the exact frame rate.
func TargetFPS() float64 {
	return float64(CPUFrequency) / float64(CyclesPerFrame)
}

// FrameDuration returns the target duration of a single frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / TargetFPS())
}
