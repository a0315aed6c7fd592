package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/video"
)

const progressInterval = 60

// Backend runs a fixed number of frames without any display, optionally saving PNG snapshots.
// It is used for automated testing and batch processing.
type Backend struct {
	config         backend.BackendConfig
	frameCount     int
	maxFrames      int
	snapshotConfig SnapshotConfig
	saved          []string
}

// SnapshotConfig holds configuration for frame snapshots
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // Save snapshot every N frames
	Directory string // Directory to save snapshots
	ROMName   string // ROM name for snapshot filenames
}

func New(maxFrames int, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	if h.maxFrames <= 0 && !config.TestPattern {
		return fmt.Errorf("headless mode needs a positive frame count, got %d", h.maxFrames)
	}
	h.config = config

	if config.TestPattern {
		slog.Info("Headless test pattern mode, exiting after the first frame")
		return nil
	}

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)

	return nil
}

// Update counts the frame, saves a snapshot when one is due and asks to quit after the last frame.
func (h *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	quit := []backend.InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}

	if h.config.TestPattern {
		return quit, nil
	}

	h.frameCount++

	snapshotDue := h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0
	if snapshotDue {
		h.saveSnapshot(frame)
	}

	if h.frameCount%progressInterval == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount < h.maxFrames {
		return nil, nil
	}

	// always keep the last frame
	if h.snapshotConfig.Enabled && !snapshotDue {
		h.saveSnapshot(frame)
	}

	if h.snapshotConfig.Enabled {
		slog.Info("Headless execution completed", "frames", h.frameCount, "snapshots", len(h.saved), "dir", h.snapshotConfig.Directory)
	} else {
		slog.Info("Headless execution completed", "frames", h.frameCount)
	}

	return quit, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// FrameCount returns the number of frames seen so far.
func (h *Backend) FrameCount() int { return h.frameCount }

// Snapshots returns the paths of the PNG files written so far.
func (h *Backend) Snapshots() []string { return h.saved }

// CreateSnapshotConfig creates a snapshot configuration from CLI parameters.
// An empty directory means a fresh temporary one.
func CreateSnapshotConfig(interval int, directory, romPath string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "mastersys-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	config.ROMName = strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))
	if config.ROMName == "" || config.ROMName == "." {
		config.ROMName = "mastersys"
	}

	return config, nil
}

func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	baseName := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.ROMName, h.frameCount)

	path, err := debug.SaveFramePNGToDir(frame, baseName, h.snapshotConfig.Directory)
	if err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
		return
	}
	h.saved = append(h.saved, path)
}
