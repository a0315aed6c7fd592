package backend

import (
	"github.com/valerio/go-mastersys/mastersys/audio"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// InputEvent is an action produced by a backend from its platform input.
type InputEvent = input.Event

// Backend represents a complete emulator platform (rendering + input + audio)
// Backends are responsible for:
// - Rendering frames to their specific output (terminal, SDL window, etc.)
// - Translating platform-specific input events to actions
// - Handling backend-specific features (snapshots, debug windows)
type Backend interface {
	// Init configures the backend. This is a required step before calling Update.
	Init(config BackendConfig) error

	// Update renders the frame, polls the platform for input and returns the resulting events.
	// Backend-local actions (snapshots, debug panes) are handled inside and may still be returned.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// BackendConfig holds configuration for backends
type BackendConfig struct {
	Title       string
	Scale       int
	VSync       bool
	Fullscreen  bool
	ShowDebug   bool // Backends may ignore unsupported features
	TestPattern bool // Frames come from the test pattern generator
	Callbacks   BackendCallbacks

	// DebugData returns the latest debug snapshot, nil when unavailable.
	DebugData func() *debug.Data
	// AudioQueue carries PSG samples to backends that play sound themselves.
	AudioQueue *audio.Queue
}

// BackendCallbacks allows backends to communicate with the emulator
type BackendCallbacks struct {
	// OnQuit is called when the platform asks for shutdown (e.g., window close)
	OnQuit func()
}
