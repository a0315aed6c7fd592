package audio

// Provider exposes the channel controls used by the frontends and the debug view.
type Provider interface {
	ToggleChannel(channel int)
	SoloChannel(channel int)
	GetChannelStatus() [ChannelCount]bool
	Enabled() bool
}

var _ Provider = (*PSG)(nil)
