package audio

const (
	// ClockRate is the NTSC master clock, the PSG divides it by 16.
	ClockRate = 3579545
	// SampleRate is the output rate in Hz.
	SampleRate = 44100
	// FrameRate is the number of frames per second (NTSC).
	FrameRate = 60
	// SamplesPerFrame is the number of mono samples produced for each frame.
	SamplesPerFrame = SampleRate / FrameRate

	// ChannelCount is the number of tone channels.
	ChannelCount = 3

	// AmplitudeScale converts a summed channel level to a 16 bit sample.
	AmplitudeScale = 256

	// tick is how much a channel counter moves for each output sample.
	tick = (ClockRate / 16 / FrameRate) / SamplesPerFrame

	periodMask = 0x3FF
)
