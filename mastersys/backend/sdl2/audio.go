//go:build sdl2

package sdl2

import (
	"fmt"
	"unsafe"

	"github.com/valerio/go-mastersys/mastersys/audio"
	"github.com/veandco/go-sdl2/sdl"
)

// maxQueuedBytes caps what SDL holds so latency stays around three frames.
const maxQueuedBytes = 3 * audio.SamplesPerFrame * 2

// audioOutput moves PSG samples from the emulator queue into an SDL queued audio device.
type audioOutput struct {
	device sdl.AudioDeviceID
	queue  *audio.Queue
	buf    []int16
}

func openAudio(queue *audio.Queue) (*audioOutput, error) {
	spec := &sdl.AudioSpec{
		Freq:     audio.SampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  1024,
	}

	device, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	sdl.PauseAudioDevice(device, false)

	return &audioOutput{
		device: device,
		queue:  queue,
		buf:    make([]int16, audio.SamplesPerFrame),
	}, nil
}

// feed tops up the device with whatever the emulator has produced.
func (a *audioOutput) feed() {
	for a.queue.Len() > 0 && sdl.GetQueuedAudioSize(a.device) < maxQueuedBytes {
		n := a.queue.Read(a.buf)
		if n == 0 {
			return
		}
		bytes := unsafe.Slice((*byte)(unsafe.Pointer(&a.buf[0])), n*2)
		if err := sdl.QueueAudio(a.device, bytes); err != nil {
			return
		}
	}
}

func (a *audioOutput) close() {
	sdl.CloseAudioDevice(a.device)
}
