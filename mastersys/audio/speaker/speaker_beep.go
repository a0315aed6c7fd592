//go:build beep

package speaker

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/valerio/go-mastersys/mastersys/audio"
)

// Speaker plays queued samples on the default output device.
type Speaker struct {
	queue   *audio.Queue
	scratch []int16
}

// New initialises the output device and starts streaming from queue.
func New(queue *audio.Queue) (*Speaker, error) {
	rate := beep.SampleRate(audio.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/100)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}

	s := &Speaker{queue: queue}
	speaker.Play(s.stream())
	slog.Info("Speaker output started", "rate", audio.SampleRate)

	return s, nil
}

func (s *Speaker) stream() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if cap(s.scratch) < len(samples) {
			s.scratch = make([]int16, len(samples))
		}
		buf := s.scratch[:len(samples)]
		s.queue.Read(buf)

		for i, v := range buf {
			f := float64(v) / 32768
			samples[i][0] = f
			samples[i][1] = f
		}
		return len(samples), true
	})
}

// Close stops playback.
func (s *Speaker) Close() {
	speaker.Close()
}
