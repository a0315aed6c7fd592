package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/video"
)

func TestDrawTestPattern(t *testing.T) {
	fb := video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight)

	t.Run("checkerboard", func(t *testing.T) {
		DrawTestPattern(fb, 0, 0)
		assert.Equal(t, White, fb.GetPixel(0, 0))
		assert.Equal(t, Black, fb.GetPixel(TestPatternTileSize, 0))
		assert.Equal(t, White, fb.GetPixel(TestPatternTileSize, TestPatternTileSize))
	})

	t.Run("palette bars cover the colour table", func(t *testing.T) {
		DrawTestPattern(fb, 1, 0)
		assert.Equal(t, video.ColorFromCRAM(0), fb.GetPixel(0, 100))
		assert.Equal(t, video.ColorFromCRAM(63), fb.GetPixel(video.FramebufferWidth-1, 100))
	})

	t.Run("stripes move with the step", func(t *testing.T) {
		DrawTestPattern(fb, 2, 0)
		before := fb.GetPixel(0, 0)
		DrawTestPattern(fb, 2, 2)
		assert.NotEqual(t, before, fb.GetPixel(0, 0))
	})

	t.Run("kind wraps", func(t *testing.T) {
		DrawTestPattern(fb, TestPatternCount, 0)
		assert.Equal(t, White, fb.GetPixel(0, 0))
	})
}

func TestWindowSize(t *testing.T) {
	assert.Equal(t, 768, DefaultWindowWidth)
	assert.Equal(t, 576, DefaultWindowHeight)
}
