package mastersys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/memory"
	"github.com/valerio/go-mastersys/mastersys/video"
)

const pageSize = 0x4000

// newTestConsole builds a console running a one page ROM. code is placed at 0x0000 and each entry
// of extra at its address.
func newTestConsole(t testing.TB, code []byte, extra map[uint16][]byte) *Console {
	t.Helper()

	image := make([]byte, pageSize)
	copy(image, code)
	for address, bytes := range extra {
		copy(image[address:], bytes)
	}

	cart, err := memory.NewCartridge(image)
	require.NoError(t, err)

	c, err := New()
	require.NoError(t, err)
	c.InsertCartridge(cart)

	return c
}

// frameInterruptProgram enables the display and frame interrupts, then spins. The IM 1 handler
// counts interrupts at 0xC000 and acknowledges them by reading the VDP status.
var frameInterruptProgram = []byte{
	0x3E, 0x60, // LD A,0x60
	0xD3, 0xBF, // OUT (0xBF),A
	0x3E, 0x81, // LD A,0x81
	0xD3, 0xBF, // OUT (0xBF),A
	0xED, 0x56, // IM 1
	0xFB,       // EI
	0x18, 0xFE, // JR -2
}

var frameInterruptHandler = map[uint16][]byte{
	0x0038: {
		0x21, 0x00, 0xC0, // LD HL,0xC000
		0x34,       // INC (HL)
		0xDB, 0xBF, // IN A,(0xBF)
		0xFB,       // EI
		0xED, 0x4D, // RETI
	},
}

func TestWriteToROMIsIgnored(t *testing.T) {
	code := []byte{
		0x3E, 0x42, // LD A,0x42
		0x32, 0x00, 0x10, // LD (0x1000),A
		0x3A, 0x00, 0x10, // LD A,(0x1000)
		0x47, // LD B,A
	}
	c := newTestConsole(t, code, map[uint16][]byte{0x1000: {0x99}})

	for i := 0; i < 4; i++ {
		c.CPU().Step()
	}

	assert.Equal(t, uint8(0x99), c.CPU().GetB())
	assert.Equal(t, uint8(0x99), c.MMU().ReadByte(0x1000), "ROM keeps its original byte")
}

func TestLoadCartridgeFailureKeepsState(t *testing.T) {
	c := newTestConsole(t, []byte{0x3E, 0x42}, nil)
	c.CPU().Step()
	before := c.MMU().Cartridge()

	err := c.LoadCartridge(filepath.Join(t.TempDir(), "missing.sms"))
	require.Error(t, err)
	assert.ErrorIs(t, err, memory.ErrCartridgeNotFound)

	assert.Same(t, before, c.MMU().Cartridge())
	assert.Equal(t, uint16(0x0002), c.CPU().GetPC(), "no reset happened")
	assert.Equal(t, uint8(0x42), c.CPU().GetA())
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.sms")
	require.NoError(t, os.WriteFile(path, make([]byte, pageSize), 0o644))

	c, err := NewWithFile(path, Frameskip(2), Region(true))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Frameskip())
	assert.NotNil(t, c.MMU().Cartridge())

	_, err = NewWithFile(path, Frameskip(-1))
	assert.Error(t, err)
}

func TestRunFrameRaisesFrameInterrupt(t *testing.T) {
	c := newTestConsole(t, frameInterruptProgram, frameInterruptHandler)

	c.RunFrame()
	assert.Equal(t, uint8(1), c.RAM()[0], "one frame interrupt per frame")
	assert.Zero(t, c.VDP().Status()&0x80, "status read acknowledged the interrupt")

	c.RunFrame()
	c.RunFrame()
	assert.Equal(t, uint8(3), c.RAM()[0])
	assert.Equal(t, uint64(3), c.FrameCount())
	assert.Len(t, c.Samples(), 735)
}

func TestRunFrameWithoutInterruptsEnabled(t *testing.T) {
	// frame interrupts enabled in the VDP but never accepted by the CPU
	code := append([]byte{}, frameInterruptProgram[:8]...)
	code = append(code, 0x18, 0xFE)
	c := newTestConsole(t, code, frameInterruptHandler)

	c.RunFrame()
	assert.Zero(t, c.RAM()[0])
	assert.True(t, c.CPU().IsIRQPending(), "the request stays latched")
}

// setBackgroundColour makes every blank pixel the given CRAM colour and turns on the display.
func setBackgroundColour(c *Console, colour uint8) {
	v := c.VDP()
	v.WriteControl(0x00)
	v.WriteControl(0xC0)
	v.WriteData(colour)
	v.WriteControl(0x40)
	v.WriteControl(0x81)
}

func TestFrameskip(t *testing.T) {
	red := video.ColorFromCRAM(0x03)
	green := video.ColorFromCRAM(0x0C)

	c := newTestConsole(t, nil, nil)
	c.SetFrameskip(1)

	setBackgroundColour(c, 0x03)
	c.RunFrame()
	assert.Equal(t, red, c.GetCurrentFrame().GetPixel(10, 10))

	setBackgroundColour(c, 0x0C)
	c.RunFrame()
	assert.Equal(t, red, c.GetCurrentFrame().GetPixel(10, 10), "second frame is skipped")

	c.RunFrame()
	assert.Equal(t, green, c.GetCurrentFrame().GetPixel(10, 10))
}

func TestDisabledDisplayIsBlank(t *testing.T) {
	c := newTestConsole(t, nil, nil)
	setBackgroundColour(c, 0x03)
	c.RunFrame()

	c.VDP().WriteControl(0x00)
	c.VDP().WriteControl(0x81)
	c.RunFrame()

	assert.Equal(t, video.BlackColor, c.GetCurrentFrame().GetPixel(10, 10))
}

func TestPauseButtonIsNMI(t *testing.T) {
	c := newTestConsole(t, nil, nil)

	c.HandleAction(action.ConsolePause, true)
	c.CPU().Step()
	assert.Equal(t, uint16(0x0067), c.CPU().GetPC(), "NMI vector plus the NOP there")
}

func TestHandleAction(t *testing.T) {
	c := newTestConsole(t, nil, nil)

	c.HandleAction(action.P1Button1, true)
	assert.True(t, c.Joypad().IsPressed(memory.Player1A))
	c.HandleAction(action.P1Button1, false)
	assert.False(t, c.Joypad().IsPressed(memory.Player1A))

	c.HandleAction(action.EmulatorFrameskipCycle, true)
	assert.Equal(t, 1, c.Frameskip())
	c.HandleAction(action.EmulatorFrameskipCycle, false)
	assert.Equal(t, 1, c.Frameskip(), "releases are ignored")

	c.HandleAction(action.AudioToggleChannel2, true)
	assert.Equal(t, [3]bool{true, false, true}, c.PSG().GetChannelStatus())
	c.HandleAction(action.AudioUnmuteAll, true)
	assert.Equal(t, [3]bool{true, true, true}, c.PSG().GetChannelStatus())

	c.RunFrame()
	c.HandleAction(action.EmulatorReset, true)
	assert.Zero(t, c.FrameCount())
}

func TestDumpMemory(t *testing.T) {
	c := newTestConsole(t, nil, nil)
	c.MMU().WriteByte(0xC000, 0xAB)

	dir := filepath.Join(t.TempDir(), "dump")
	files, err := c.DumpMemory(dir)
	require.NoError(t, err)
	assert.Len(t, files, 3, "no cartridge RAM in use")

	ram, err := os.ReadFile(filepath.Join(dir, "ram.bin"))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), ram[0])
}

func TestExtractDebugData(t *testing.T) {
	t.Run("uninitialised console", func(t *testing.T) {
		assert.Nil(t, (&Console{}).ExtractDebugData())
	})

	t.Run("running console", func(t *testing.T) {
		c := newTestConsole(t, frameInterruptProgram, frameInterruptHandler)
		c.RunFrame()

		data := c.ExtractDebugData()
		require.NotNil(t, data)
		require.NotNil(t, data.CPU)
		require.NotNil(t, data.VDP)
		require.NotNil(t, data.Audio)

		snapshot := data.Memory
		require.NotNil(t, snapshot)
		assert.GreaterOrEqual(t, data.CPU.PC, snapshot.StartAddr)
		assert.Less(t, int(data.CPU.PC), int(snapshot.StartAddr)+len(snapshot.Bytes))

		assert.Equal(t, uint8(0x60), data.VDP.Registers[1])
		assert.Len(t, data.VDP.VRAM, 0x4000)
		assert.Equal(t, uint64(1), data.Frame)

		pc := data.CPU.PC
		expected := uint16(c.MMU().ReadByte(pc))
		if expected == 0xCB || expected == 0xED || expected == 0xDD || expected == 0xFD {
			expected = expected<<8 | uint16(c.MMU().ReadByte(pc+1))
		}
		assert.Equal(t, expected, data.CPU.Opcode)
	})
}
