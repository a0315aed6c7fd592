package debug

import (
	"math"

	"github.com/valerio/go-mastersys/mastersys/audio"
)

// psgClock is the rate the tone counters run at, a tone toggles once per period ticks.
const psgClock = audio.ClockRate / 16

type ChannelStatus struct {
	Enabled   bool
	Period    uint16
	Volume    int
	Frequency float64
	Note      string
}

type AudioData struct {
	Enabled      bool
	Channels     [audio.ChannelCount]ChannelStatus
	NoiseControl uint8
	NoiseVolume  int
}

// PSGReader is the read side of the sound generator used by the debug views.
type PSGReader interface {
	Enabled() bool
	GetChannelStatus() [audio.ChannelCount]bool
	Period(channel int) uint16
	Volume(channel int) int
	Noise() (control uint8, volume int)
}

func ExtractAudioData(psg PSGReader) *AudioData {
	data := &AudioData{Enabled: psg.Enabled()}

	status := psg.GetChannelStatus()
	for i := range data.Channels {
		ch := &data.Channels[i]
		ch.Enabled = status[i]
		ch.Period = psg.Period(i + 1)
		ch.Volume = psg.Volume(i + 1)
		if ch.Period > 0 {
			ch.Frequency = float64(psgClock) / (2 * float64(ch.Period))
		}
		ch.Note = frequencyToNote(ch.Frequency)
	}
	data.NoiseControl, data.NoiseVolume = psg.Noise()

	return data
}

func frequencyToNote(freq float64) string {
	if freq < 20 || freq > 20000 {
		return "--"
	}

	notes := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

	// MIDI note number, A4 = 69
	midi := int(math.Round(12*math.Log2(freq/440) + 69))
	octave := midi/12 - 1
	if octave < 0 || octave > 9 {
		return "--"
	}

	return notes[midi%12] + string(rune('0'+octave))
}
