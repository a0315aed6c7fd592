package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/audio"
)

func TestExtractAudioData(t *testing.T) {
	psg := audio.New()
	// channel 1 period 0x0FE at full volume
	psg.Write(0x8E)
	psg.Write(0x0F)
	psg.Write(0x90)
	// noise control and attenuation
	psg.Write(0xE5)
	psg.Write(0xF3)
	psg.ToggleChannel(2)

	data := ExtractAudioData(psg)
	assert.True(t, data.Enabled)

	ch1 := data.Channels[0]
	assert.True(t, ch1.Enabled)
	assert.Equal(t, uint16(0x0FE), ch1.Period)
	assert.Equal(t, 15, ch1.Volume)
	assert.InDelta(t, 440.4, ch1.Frequency, 0.1)
	assert.Equal(t, "A4", ch1.Note)

	ch2 := data.Channels[1]
	assert.False(t, ch2.Enabled)
	assert.Zero(t, ch2.Frequency)
	assert.Equal(t, "--", ch2.Note)

	assert.Equal(t, uint8(0x05), data.NoiseControl)
	assert.Equal(t, 12, data.NoiseVolume)
}

func TestFrequencyToNote(t *testing.T) {
	tests := []struct {
		freq float64
		want string
	}{
		{440, "A4"},
		{261.63, "C4"},
		{880, "A5"},
		{10, "--"},
		{25000, "--"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, frequencyToNote(tt.freq))
		})
	}
}
