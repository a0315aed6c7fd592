package debug

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-mastersys/mastersys/video"
)

// TakeSnapshot saves the current frame to the working directory.
func TakeSnapshot(frame *video.FrameBuffer) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "mastersys_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// FrameToImage converts an RGBA8888 framebuffer into an image.
func FrameToImage(frame *video.FrameBuffer) *image.RGBA {
	width, height := int(frame.Width()), int(frame.Height())
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for i, pixel := range frame.ToSlice() {
		idx := i * 4
		img.Pix[idx] = uint8(pixel >> 24)
		img.Pix[idx+1] = uint8(pixel >> 16)
		img.Pix[idx+2] = uint8(pixel >> 8)
		img.Pix[idx+3] = uint8(pixel)
	}

	return img
}

// SaveFramePNGToDir saves a framebuffer as PNG with timestamp to a specific directory
// (the working directory if empty) and returns the file path.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", baseName, timestamp)

	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	filePath := filepath.Join(outputDir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := png.Encode(file, FrameToImage(frame)); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()))
	return filePath, nil
}
