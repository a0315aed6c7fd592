package mastersys

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/audio"
	"github.com/valerio/go-mastersys/mastersys/cpu"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/memory"
	"github.com/valerio/go-mastersys/mastersys/ports"
	"github.com/valerio/go-mastersys/mastersys/timing"
	"github.com/valerio/go-mastersys/mastersys/video"
)

const (
	// cycles run before the line is drawn, the rest of the line is horizontal blank
	activeLineCycles = 219
	hblankCycles     = timing.CyclesPerLine - activeLineCycles
)

// Console wires the CPU, memory, VDP, PSG and joypads together and drives them one frame at a time.
type Console struct {
	cpu    *cpu.CPU
	mem    *memory.MMU
	vdp    *video.VDP
	psg    *audio.PSG
	joypad *memory.Joypad
	ports  *ports.Router

	samples   []int16
	frameskip int
	skipped   int
	frames    uint64

	limiter timing.Limiter
}

// New creates a console with no cartridge inserted.
func New(opts ...Option) (*Console, error) {
	c := &Console{
		mem:     memory.New(),
		vdp:     video.New(),
		psg:     audio.New(),
		joypad:  memory.NewJoypad(),
		samples: make([]int16, audio.SamplesPerFrame),
		limiter: timing.NewNoOpLimiter(),
	}
	c.ports = ports.New(c.vdp, c.psg, c.joypad)
	c.cpu = cpu.New(c.mem, c.ports)
	c.Reset()

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewWithFile creates a console and loads the cartridge at path into it.
func NewWithFile(path string, opts ...Option) (*Console, error) {
	return New(append([]Option{CartPath(path)}, opts...)...)
}

// LoadCartridge reads the cartridge at path, inserts it and resets the console.
// On failure the console is left exactly as it was.
func (c *Console) LoadCartridge(path string) error {
	cart, err := memory.LoadCartridge(path)
	if err != nil {
		return fmt.Errorf("loading cartridge: %w", err)
	}

	c.InsertCartridge(cart)
	return nil
}

// InsertCartridge swaps the cartridge and resets the console.
func (c *Console) InsertCartridge(cart *memory.Cartridge) {
	c.mem.LoadCartridge(cart)
	c.Reset()
}

// Reset puts every component back in its power-on state, as after the BIOS handed over to the cartridge.
// Channel mutes, frameskip and held buttons survive.
func (c *Console) Reset() {
	c.mem.Reset()
	c.vdp.Reset()
	c.psg.Reset()
	c.cpu.Reset()
	c.cpu.Boot()

	c.skipped = 0
	c.frames = 0
	clear(c.samples)

	slog.Debug("Console reset")
}

// RunFrame emulates the 262 scanlines of one frame. CPU time for a visible line is split around the
// render so that raster effects land on the right line. The frame's audio ends up in Samples.
func (c *Console) RunFrame() {
	render := c.skipped == 0

	for line := 0; line < video.ScanlinesPerFrame; line++ {
		switch {
		case line < video.FramebufferHeight:
			c.cpu.Execute(activeLineCycles)
			if c.vdp.LineInterruptTick() {
				c.cpu.RequestInterrupt()
			}
			if render {
				c.vdp.RenderLine()
			}
			c.cpu.Execute(hblankCycles)

		case line == video.VBlankLine:
			c.vdp.ApplyVScroll()
			c.cpu.Execute(activeLineCycles)
			c.vdp.ReloadLineCounter()
			if c.vdp.BeginVBlank() {
				c.cpu.RequestInterrupt()
			}
			c.cpu.Execute(hblankCycles)

		default:
			c.cpu.Execute(timing.CyclesPerLine)
			c.vdp.ReloadLineCounter()
		}

		c.vdp.NextLine()
	}

	c.vdp.ApplyVScroll()
	c.psg.Output(c.samples)

	if !c.vdp.DisplayEnabled() {
		c.vdp.BlankFrame()
	}

	c.skipped++
	if c.skipped > c.frameskip {
		c.skipped = 0
	}
	c.frames++
}

// RunUntilFrame runs one frame and waits on the frame limiter.
func (c *Console) RunUntilFrame() error {
	c.RunFrame()
	c.limiter.WaitForNextFrame()
	return nil
}

// SetFrameskip renders only one frame out of every n+1. Skipped frames still run the CPU and sound.
func (c *Console) SetFrameskip(n int) {
	if n < 0 {
		n = 0
	}
	c.frameskip = n
	c.skipped = 0
}

func (c *Console) Frameskip() int { return c.frameskip }

// SetFrameLimiter replaces the frame limiter, nil disables limiting.
func (c *Console) SetFrameLimiter(l timing.Limiter) {
	if l == nil {
		l = timing.NewNoOpLimiter()
	}
	c.limiter = l
}

// ResetFrameTiming restarts the limiter, used after pauses.
func (c *Console) ResetFrameTiming() {
	c.limiter.Reset()
}

// PressPause presses the console PAUSE button, which is wired to the CPU's NMI line.
func (c *Console) PressPause() {
	c.cpu.RequestNMI()
}

// DumpMemory writes RAM, cartridge RAM, VRAM and CRAM to dir.
func (c *Console) DumpMemory(dir string) ([]string, error) {
	return debug.DumpMemory(dir, c)
}

// GetCurrentFrame returns the VDP framebuffer, valid until the next frame runs.
func (c *Console) GetCurrentFrame() *video.FrameBuffer { return c.vdp.FrameBuffer() }

// Samples returns the audio produced by the last frame, valid until the next frame runs.
func (c *Console) Samples() []int16 { return c.samples }

// FrameCount returns the frames run since the last reset.
func (c *Console) FrameCount() uint64 { return c.frames }

func (c *Console) CPU() *cpu.CPU          { return c.cpu }
func (c *Console) MMU() *memory.MMU       { return c.mem }
func (c *Console) VDP() *video.VDP        { return c.vdp }
func (c *Console) PSG() *audio.PSG        { return c.psg }
func (c *Console) Joypad() *memory.Joypad { return c.joypad }

// GetAudioProvider exposes the channel controls of the sound generator.
func (c *Console) GetAudioProvider() audio.Provider { return c.psg }

// memory views for debug.DumpMemory

func (c *Console) RAM() []uint8     { return c.mem.RAM() }
func (c *Console) CartRAM() []uint8 { return c.mem.CartRAM() }
func (c *Console) HasCartRAM() bool { return c.mem.HasCartRAM() }
func (c *Console) VRAM() []uint8    { return c.vdp.VRAM() }
func (c *Console) CRAM() []uint8    { return c.vdp.CRAM() }
