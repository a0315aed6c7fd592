package audio

import (
	"fmt"
	"log/slog"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavBitDepth = 16

// WAVRecorder writes PSG output to a mono 16 bit WAV file.
type WAVRecorder struct {
	path    string
	file    *os.File
	encoder *wav.Encoder
	buffer  *goaudio.IntBuffer
	samples int
}

// NewWAVRecorder creates the file at path and prepares the encoder.
func NewWAVRecorder(path string) (*WAVRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating wav file: %w", err)
	}

	r := &WAVRecorder{
		path:    path,
		file:    f,
		encoder: wav.NewEncoder(f, SampleRate, wavBitDepth, 1, 1),
		buffer: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: SampleRate},
			SourceBitDepth: wavBitDepth,
			Data:           make([]int, 0, SamplesPerFrame),
		},
	}
	slog.Info("Recording audio", "path", path)

	return r, nil
}

// Write appends samples to the recording.
func (r *WAVRecorder) Write(samples []int16) error {
	r.buffer.Data = r.buffer.Data[:0]
	for _, s := range samples {
		r.buffer.Data = append(r.buffer.Data, int(s))
	}

	if err := r.encoder.Write(r.buffer); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	r.samples += len(samples)

	return nil
}

// Samples returns the number of samples recorded so far.
func (r *WAVRecorder) Samples() int { return r.samples }

// Close finalises the WAV header and closes the file.
func (r *WAVRecorder) Close() error {
	if err := r.encoder.Close(); err != nil {
		r.file.Close()
		return fmt.Errorf("finalising wav file %s: %w", r.path, err)
	}
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("closing wav file %s: %w", r.path, err)
	}

	slog.Info("Audio recording saved", "path", r.path, "samples", r.samples)
	return nil
}
