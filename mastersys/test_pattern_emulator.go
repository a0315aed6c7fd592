package mastersys

import (
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/display"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/timing"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// TestPatternEmulator displays test patterns without actual emulation
type TestPatternEmulator struct {
	frameBuffer      *video.FrameBuffer
	patternType      int
	animationCounter int
	limiter          timing.Limiter
}

func NewTestPatternEmulator() *TestPatternEmulator {
	e := &TestPatternEmulator{
		frameBuffer: video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight),
		limiter:     timing.NewNoOpLimiter(),
	}
	display.DrawTestPattern(e.frameBuffer, 0, 0)
	return e
}

func (e *TestPatternEmulator) RunUntilFrame() error {
	e.animationCounter++
	if e.animationCounter%display.TestPatternAnimationFrames == 0 {
		display.DrawTestPattern(e.frameBuffer, e.patternType, e.animationCounter/display.TestPatternAnimationFrames)
	}
	e.limiter.WaitForNextFrame()
	return nil
}

func (e *TestPatternEmulator) GetCurrentFrame() *video.FrameBuffer {
	return e.frameBuffer
}

func (e *TestPatternEmulator) HandleAction(act action.Action, pressed bool) {
	if act == action.EmulatorTestPatternCycle && pressed {
		e.CycleTestPattern()
	}
}

func (e *TestPatternEmulator) ExtractDebugData() *debug.Data {
	return &debug.Data{
		Frame:         uint64(e.animationCounter),
		DebuggerState: debug.DebuggerRunning,
	}
}

// CycleTestPattern switches to the next pattern.
func (e *TestPatternEmulator) CycleTestPattern() {
	e.patternType = (e.patternType + 1) % display.TestPatternCount
	display.DrawTestPattern(e.frameBuffer, e.patternType, 0)
	slog.Info("Switched to test pattern", "pattern", display.PatternNames[e.patternType])
}

// Pattern returns the index of the pattern on screen.
func (e *TestPatternEmulator) Pattern() int { return e.patternType }

func (e *TestPatternEmulator) SetFrameLimiter(limiter timing.Limiter) {
	if limiter == nil {
		e.limiter = timing.NewNoOpLimiter()
	} else {
		e.limiter = limiter
	}
}

func (e *TestPatternEmulator) ResetFrameTiming() {
	e.limiter.Reset()
}

var _ Emulator = (*TestPatternEmulator)(nil)
