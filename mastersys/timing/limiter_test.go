package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameTiming(t *testing.T) {
	assert.Equal(t, 59736, CyclesPerFrame)
	assert.InDelta(t, 59.92, TargetFPS(), 0.01)
	assert.InDelta(t, float64(16688*time.Microsecond), float64(FrameDuration()), float64(10*time.Microsecond))
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    Kind
		wantErr bool
	}{
		{KindAdaptive, false},
		{"", false},
		{KindTicker, false},
		{KindNone, false},
		{"turbo", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			limiter, err := New(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, limiter)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, limiter)
			if ticker, ok := limiter.(*TickerLimiter); ok {
				ticker.Stop()
			}
		})
	}
}

func TestNoOpLimiterDoesNotBlock(t *testing.T) {
	limiter := NewNoOpLimiter()
	start := time.Now()
	for i := 0; i < 1000; i++ {
		limiter.WaitForNextFrame()
	}
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestAdaptiveLimiterPaces(t *testing.T) {
	frame := 5 * time.Millisecond
	limiter := newAdaptiveLimiter(frame)

	start := time.Now()
	for i := 0; i < 5; i++ {
		limiter.WaitForNextFrame()
	}

	// the first wait returns immediately
	assert.GreaterOrEqual(t, time.Since(start), 4*frame)
	assert.Equal(t, int64(5), limiter.Frames())
}

func TestAdaptiveLimiterMeasuresFPS(t *testing.T) {
	limiter := newAdaptiveLimiter(time.Millisecond)
	assert.Zero(t, limiter.FPS())

	for i := 0; i < FrameRateWindow; i++ {
		limiter.WaitForNextFrame()
	}
	assert.Greater(t, limiter.FPS(), 0.0)

	limiter.Reset()
	assert.Zero(t, limiter.Frames())
}

func TestTickerLimiter(t *testing.T) {
	limiter := newTickerLimiter(2 * time.Millisecond)
	defer limiter.Stop()

	start := time.Now()
	limiter.WaitForNextFrame()
	limiter.WaitForNextFrame()
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}
