package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-mastersys/mastersys/video"
)

func TestFrameToImage(t *testing.T) {
	frame := video.NewFrameBuffer(2, 2)
	frame.SetPixel(0, 0, 0x11223344)
	frame.SetPixel(1, 1, 0xFF0000FF)

	img := FrameToImage(frame)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0xFF, 0x00, 0x00, 0xFF}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, img.RGBAAt(1, 0))
}

func TestSaveFramePNGToDir(t *testing.T) {
	dir := t.TempDir()
	frame := video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight)
	frame.Clear(0x0055AAFF)

	path, err := SaveFramePNGToDir(frame, "frame", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "frame_"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, video.FramebufferWidth, img.Bounds().Dx())
	assert.Equal(t, video.FramebufferHeight, img.Bounds().Dy())

	r, g, b, _ := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0x00), r>>8)
	assert.Equal(t, uint32(0x55), g>>8)
	assert.Equal(t, uint32(0xAA), b>>8)
}

func TestSaveFramePNGToMissingDir(t *testing.T) {
	frame := video.NewFrameBuffer(1, 1)
	_, err := SaveFramePNGToDir(frame, "frame", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
