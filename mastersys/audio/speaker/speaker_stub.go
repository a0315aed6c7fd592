//go:build !beep

package speaker

import (
	"errors"

	"github.com/valerio/go-mastersys/mastersys/audio"
)

// ErrNoSpeaker is returned when the binary was built without speaker support.
var ErrNoSpeaker = errors.New("speaker output not available, build with -tags beep")

// Speaker is a placeholder when built without the beep tag.
type Speaker struct{}

// New always fails without the beep tag.
func New(queue *audio.Queue) (*Speaker, error) {
	return nil, ErrNoSpeaker
}

func (s *Speaker) Close() {}
