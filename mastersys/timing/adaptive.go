package timing

import (
	"log/slog"
	"time"
)

// spinThreshold is the remaining wait below which the limiter spins instead of sleeping.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter uses precise timing with drift compensation.
// Combines sleep for efficiency with busy-waiting for accuracy.
type AdaptiveLimiter struct {
	targetFrameTime time.Duration
	nextFrameTime   time.Time
	frameCounter    int64

	// measurement window for FPS
	windowStart  time.Time
	windowFrames int
	fps          float64
}

func NewAdaptiveLimiter() *AdaptiveLimiter {
	return newAdaptiveLimiter(FrameDuration())
}

func newAdaptiveLimiter(frameTime time.Duration) *AdaptiveLimiter {
	now := time.Now()
	return &AdaptiveLimiter{
		targetFrameTime: frameTime,
		nextFrameTime:   now,
		windowStart:     now,
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := time.Now()
	sleepTime := a.nextFrameTime.Sub(now)

	switch {
	case sleepTime > spinThreshold:
		time.Sleep(sleepTime - time.Millisecond)
		fallthrough
	case sleepTime > 0:
		for time.Now().Before(a.nextFrameTime) {
		}
	case sleepTime < -5*time.Millisecond:
		// too far behind, don't try to catch up
		a.nextFrameTime = now
	}

	a.nextFrameTime = a.nextFrameTime.Add(a.targetFrameTime)
	a.frameCounter++
	a.windowFrames++

	if a.windowFrames == FrameRateWindow {
		end := time.Now()
		elapsed := end.Sub(a.windowStart)
		a.fps = float64(a.windowFrames) * float64(time.Second) / float64(elapsed)

		drift := elapsed - time.Duration(a.windowFrames)*a.targetFrameTime
		if drift.Abs() > 10*time.Millisecond {
			slog.Debug("Frame timing drift", "drift_ms", drift.Milliseconds(), "fps", a.fps)
		}

		a.windowStart = end
		a.windowFrames = 0
	}
}

// FrameRateWindow is the number of frames FPS is averaged over.
const FrameRateWindow = 60

// FPS returns the frame rate measured over the last complete window, 0 until one completes.
func (a *AdaptiveLimiter) FPS() float64 {
	return a.fps
}

// Frames returns the number of frames waited for since the last reset.
func (a *AdaptiveLimiter) Frames() int64 {
	return a.frameCounter
}

func (a *AdaptiveLimiter) Reset() {
	now := time.Now()
	a.nextFrameTime = now
	a.windowStart = now
	a.windowFrames = 0
	a.frameCounter = 0
}
