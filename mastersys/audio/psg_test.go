package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPSGWrites(t *testing.T) {
	tests := []struct {
		name   string
		writes []uint8
		check  func(t *testing.T, p *PSG)
	}{
		{
			name:   "tone period low then high bits",
			writes: []uint8{0x8A, 0x15},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, uint16(0x15A), p.Period(1))
			},
		},
		{
			name:   "latch only replaces low bits",
			writes: []uint8{0x8A, 0x15, 0x83},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, uint16(0x153), p.Period(1))
			},
		},
		{
			name:   "data byte only replaces high bits",
			writes: []uint8{0xAF, 0x3F, 0x01},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, uint16(0x01F), p.Period(2))
			},
		},
		{
			name:   "third channel period",
			writes: []uint8{0xC5, 0x01},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, uint16(0x015), p.Period(3))
				assert.Equal(t, uint16(0), p.Period(1))
			},
		},
		{
			name:   "attenuation is inverted",
			writes: []uint8{0x90, 0xBF, 0xD3},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, 15, p.Volume(1))
				assert.Equal(t, 0, p.Volume(2))
				assert.Equal(t, 12, p.Volume(3))
			},
		},
		{
			name:   "data byte after a volume latch sets the volume",
			writes: []uint8{0x91, 0x03},
			check: func(t *testing.T, p *PSG) {
				assert.Equal(t, 12, p.Volume(1))
				assert.Equal(t, uint16(0), p.Period(1))
			},
		},
		{
			name:   "noise registers are latched",
			writes: []uint8{0xE3, 0xF2},
			check: func(t *testing.T, p *PSG) {
				control, volume := p.Noise()
				assert.Equal(t, uint8(3), control)
				assert.Equal(t, 13, volume)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			for _, w := range tt.writes {
				p.Write(w)
			}
			tt.check(t, p)
		})
	}
}

func TestPSGWritesAcceptedWhileDisabled(t *testing.T) {
	p := New()
	p.SetEnabled(false)
	p.Write(0x90)

	assert.Equal(t, 15, p.Volume(1))
}

func TestPSGOutputSquareWave(t *testing.T) {
	p := New()
	// channel 1 at full volume with a zero period flips every sample
	p.Write(0x90)

	buf := make([]int16, 4)
	assert.Equal(t, 4, p.Output(buf))

	full := int16(15 * AmplitudeScale)
	assert.Equal(t, []int16{full, -full, full, -full}, buf)
}

func TestPSGOutputHalfPeriod(t *testing.T) {
	p := New()
	p.Write(0x90)
	// period 20 gives a counter that lasts 4 samples per half wave
	p.Write(0x84)
	p.Write(0x01)

	buf := make([]int16, 16)
	p.Output(buf)

	full := int16(15 * AmplitudeScale)
	// the counter starts at zero, so the first two half waves are short
	expected := []int16{full, -full, -full, -full, full, full, full, full, -full, -full, -full, -full, full, full, full, full}
	assert.Equal(t, expected, buf)
}

func TestPSGOutputMixesChannels(t *testing.T) {
	p := New()
	p.Write(0x90)
	p.Write(0xB8)

	buf := make([]int16, 1)
	p.Output(buf)
	assert.Equal(t, int16((15+7)*AmplitudeScale), buf[0])
}

func TestPSGOutputLength(t *testing.T) {
	p := New()

	assert.Equal(t, SamplesPerFrame, p.Output(make([]int16, 2000)))
	assert.Equal(t, 100, p.Output(make([]int16, 100)))
	assert.Equal(t, 735, SamplesPerFrame)
	assert.Equal(t, 5, tick)
}

func TestPSGDisabledOutputsSilence(t *testing.T) {
	p := New()
	p.Write(0x90)
	p.ToggleEnabled()
	assert.False(t, p.Enabled())

	buf := []int16{1, 2, 3}
	assert.Equal(t, 3, p.Output(buf))
	assert.Equal(t, []int16{0, 0, 0}, buf)
}

func TestPSGChannelControls(t *testing.T) {
	p := New()
	p.Write(0x90)

	p.ToggleChannel(1)
	assert.Equal(t, [ChannelCount]bool{false, true, true}, p.GetChannelStatus())

	buf := make([]int16, 2)
	p.Output(buf)
	assert.Equal(t, []int16{0, 0}, buf)

	p.SoloChannel(3)
	assert.Equal(t, [ChannelCount]bool{false, false, true}, p.GetChannelStatus())

	// out of range is ignored
	p.ToggleChannel(4)
	p.ToggleChannel(0)
	assert.Equal(t, [ChannelCount]bool{false, false, true}, p.GetChannelStatus())

	p.UnmuteAll()
	assert.Equal(t, [ChannelCount]bool{true, true, true}, p.GetChannelStatus())
}

func TestPSGResetKeepsMutes(t *testing.T) {
	p := New()
	p.Write(0x90)
	p.Write(0x8A)
	p.ToggleChannel(2)

	p.Reset()
	assert.Equal(t, 0, p.Volume(1))
	assert.Equal(t, uint16(0), p.Period(1))
	assert.Equal(t, [ChannelCount]bool{true, false, true}, p.GetChannelStatus())
}
