package mastersys

import (
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/cpu"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// Emulator is the interface for all emulator implementations
type Emulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)
	ExtractDebugData() *debug.Data
}

var _ Emulator = (*Console)(nil)

const (
	// bytes of memory shown around PC in the debug view
	debugBytesBefore  = 32
	debugSnapshotSize = 128
)

// HandleAction applies an action that concerns the emulated hardware. Controller buttons follow
// pressed, everything else only reacts to presses.
func (c *Console) HandleAction(act action.Action, pressed bool) {
	if key, ok := input.JoypadKey(act); ok {
		if pressed {
			c.joypad.Press(key)
		} else {
			c.joypad.Release(key)
		}
		return
	}

	if !pressed {
		return
	}

	switch act {
	case action.ConsolePause:
		c.PressPause()
	case action.EmulatorReset:
		c.Reset()
	case action.EmulatorFrameskipCycle:
		c.SetFrameskip((c.frameskip + 1) % maxFrameskip)
		slog.Info("Frameskip changed", "frameskip", c.frameskip)
	case action.AudioToggleChannel1, action.AudioToggleChannel2, action.AudioToggleChannel3:
		c.psg.ToggleChannel(act.Channel())
	case action.AudioSoloChannel1, action.AudioSoloChannel2, action.AudioSoloChannel3:
		c.psg.SoloChannel(act.Channel())
	case action.AudioUnmuteAll:
		c.psg.UnmuteAll()
	case action.AudioToggleSound:
		c.psg.ToggleEnabled()
	}
}

// maxFrameskip bounds the values EmulatorFrameskipCycle steps through.
const maxFrameskip = 4

// ExtractDebugData returns a read-only copy of the CPU and VDP state plus the memory around PC.
func (c *Console) ExtractDebugData() *debug.Data {
	if c.cpu == nil || c.vdp == nil || c.mem == nil {
		return nil
	}

	af2, bc2, de2, hl2 := c.cpu.GetShadow()
	cpuState := &debug.CPUState{
		A:      c.cpu.GetA(),
		F:      c.cpu.GetF(),
		B:      c.cpu.GetB(),
		C:      c.cpu.GetC(),
		D:      c.cpu.GetD(),
		E:      c.cpu.GetE(),
		H:      c.cpu.GetH(),
		L:      c.cpu.GetL(),
		AF2:    af2,
		BC2:    bc2,
		DE2:    de2,
		HL2:    hl2,
		IX:     c.cpu.GetIX(),
		IY:     c.cpu.GetIY(),
		SP:     c.cpu.GetSP(),
		PC:     c.cpu.GetPC(),
		I:      c.cpu.GetI(),
		R:      c.cpu.GetR(),
		IFF1:   c.cpu.GetIFF1(),
		IFF2:   c.cpu.GetIFF2(),
		IM:     c.cpu.GetIM(),
		Halted: c.cpu.IsHalted(),
		Cycles: c.cpu.GetCycles(),
		Flags:  c.cpu.GetFlagString(),
		Opcode: cpu.Peek(c.cpu),
	}

	vdpState := &debug.VDPState{
		Registers:   c.vdp.Registers(),
		Status:      c.vdp.Status(),
		Scanline:    c.vdp.Scanline(),
		VCounter:    c.vdp.VCounter(),
		Address:     c.vdp.Address(),
		Code:        c.vdp.Code(),
		LineCounter: c.vdp.LineCounter(),
		VRAM:        append([]uint8(nil), c.vdp.VRAM()...),
	}
	copy(vdpState.CRAM[:], c.vdp.CRAM())

	data := &debug.Data{
		CPU:           cpuState,
		VDP:           vdpState,
		Audio:         debug.ExtractAudioData(c.psg),
		Memory:        debug.SnapshotAround(c.mem, cpuState.PC, debugBytesBefore, debugSnapshotSize),
		CartRAM:       c.mem.HasCartRAM(),
		Frame:         c.frames,
		DebuggerState: debug.DebuggerRunning,
	}
	for i := range data.Banks {
		data.Banks[i] = c.mem.Mapper().Bank(i)
	}

	return data
}
