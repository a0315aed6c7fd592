package audio

// toneChannel is one square wave generator.
type toneChannel struct {
	period   uint16
	volume   int
	counter  int
	polarity int

	muted bool
}

// PSG is the programmable sound generator: three square wave channels and a noise channel.
//
// Writes use a latch: a byte with bit 7 set selects a channel register (bits 4-6) and carries
// its low 4 bits, a byte with bit 7 clear supplies the high bits of whatever was selected last.
// Registers 0, 2 and 4 are the 10 bit tone periods, 1, 3 and 5 the attenuations, 6 and 7
// belong to the noise channel, which is latched but not synthesised.
type PSG struct {
	tones   [ChannelCount]toneChannel
	latched uint8

	noiseControl uint8
	noiseVolume  int

	enabled bool
}

// New returns a PSG with all channels silent and sound enabled.
func New() *PSG {
	p := &PSG{enabled: true}
	p.Reset()

	return p
}

// Reset silences every channel. Mute toggles and the global enable are left alone.
func (p *PSG) Reset() {
	for i := range p.tones {
		muted := p.tones[i].muted
		p.tones[i] = toneChannel{polarity: 1, muted: muted}
	}
	p.latched = 0
	p.noiseControl = 0
	p.noiseVolume = 0
}

// Write handles a byte written to the PSG port.
func (p *PSG) Write(value uint8) {
	if value&0x80 != 0 {
		p.latched = (value >> 4) & 0x07
		p.writeRegister(value&0x0F, true)
		return
	}

	p.writeRegister(value, false)
}

func (p *PSG) writeRegister(value uint8, latch bool) {
	channel := int(p.latched >> 1)
	isVolume := p.latched&1 != 0

	if channel == ChannelCount {
		if isVolume {
			p.noiseVolume = attenuationToVolume(value)
		} else {
			p.noiseControl = value & 0x07
		}
		return
	}

	tone := &p.tones[channel]
	switch {
	case isVolume:
		tone.volume = attenuationToVolume(value)
	case latch:
		tone.period = tone.period&^0x0F | uint16(value&0x0F)
	default:
		tone.period = tone.period&0x0F | uint16(value&0x3F)<<4
	}
}

// attenuationToVolume maps the 4 bit attenuation (0 loudest, 15 off) to a level.
func attenuationToVolume(value uint8) int {
	return int(^value & 0x0F)
}

// Output synthesises one frame of samples into buf and returns how many were written,
// at most SamplesPerFrame. When sound is disabled the samples are silent.
func (p *PSG) Output(buf []int16) int {
	n := min(len(buf), SamplesPerFrame)

	if !p.enabled {
		clear(buf[:n])
		return n
	}

	for i := 0; i < n; i++ {
		level := 0
		for c := range p.tones {
			tone := &p.tones[c]
			if tone.muted {
				continue
			}

			level += tone.volume * tone.polarity
			tone.counter -= tick
			if tone.counter <= 0 {
				tone.counter += int(tone.period & periodMask)
				tone.polarity = -tone.polarity
			}
		}
		buf[i] = int16(level * AmplitudeScale)
	}

	return n
}

// SetEnabled turns sound output on or off.
func (p *PSG) SetEnabled(enabled bool) { p.enabled = enabled }

// ToggleEnabled flips the global sound switch.
func (p *PSG) ToggleEnabled() { p.enabled = !p.enabled }

func (p *PSG) Enabled() bool { return p.enabled }

// ToggleChannel mutes or unmutes a tone channel, numbered from 1.
func (p *PSG) ToggleChannel(channel int) {
	if channel >= 1 && channel <= ChannelCount {
		p.tones[channel-1].muted = !p.tones[channel-1].muted
	}
}

// SoloChannel mutes all channels except the specified one.
func (p *PSG) SoloChannel(channel int) {
	for i := range p.tones {
		p.tones[i].muted = i != channel-1
	}
}

// UnmuteAll unmutes all channels.
func (p *PSG) UnmuteAll() {
	for i := range p.tones {
		p.tones[i].muted = false
	}
}

// GetChannelStatus reports which channels are currently audible.
func (p *PSG) GetChannelStatus() [ChannelCount]bool {
	var status [ChannelCount]bool
	for i := range p.tones {
		status[i] = !p.tones[i].muted
	}
	return status
}

// Period returns the 10 bit period of a tone channel, numbered from 1.
func (p *PSG) Period(channel int) uint16 { return p.tones[channel-1].period }

// Volume returns the level (15 loudest) of a tone channel, numbered from 1.
func (p *PSG) Volume(channel int) int { return p.tones[channel-1].volume }

// Noise returns the latched noise control bits and level.
func (p *PSG) Noise() (control uint8, volume int) { return p.noiseControl, p.noiseVolume }
