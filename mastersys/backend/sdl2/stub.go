//go:build !sdl2

package sdl2

import (
	"errors"

	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// ErrUnavailable is returned when the binary was built without SDL2 support.
var ErrUnavailable = errors.New("SDL2 backend not available, build with -tags sdl2 to enable")

// Backend stub for when SDL2 is not available
type Backend struct{}

// New creates a stub SDL2 backend that returns an error
func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(backend.BackendConfig) error {
	return ErrUnavailable
}

func (s *Backend) Update(*video.FrameBuffer) ([]backend.InputEvent, error) {
	return nil, ErrUnavailable
}

func (s *Backend) Cleanup() error {
	return nil
}

// ToggleDebugWindow does nothing
func (s *Backend) ToggleDebugWindow() {}

func (s *Backend) AudioActive() bool { return false }
