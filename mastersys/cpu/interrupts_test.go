package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterruptNeedsIFF1(t *testing.T) {
	c, _, _ := newTestCPU(0x00, 0x00)
	c.im = 1
	c.RequestInterrupt()

	c.Step()
	assert.Equal(t, uint16(0x0001), c.GetPC())
	assert.True(t, c.IsIRQPending(), "request stays latched while interrupts are disabled")
}

func TestEnableInterruptsDelaysAcceptance(t *testing.T) {
	// EI; NOP; NOP
	c, bus, _ := newTestCPU(0xFB, 0x00, 0x00)
	c.im = 1
	c.RequestInterrupt()

	c.Step()
	assert.True(t, c.GetIFF1())
	assert.Equal(t, uint16(0x0001), c.GetPC())

	// the instruction after EI always runs
	c.Step()
	assert.Equal(t, uint16(0x0002), c.GetPC())
	assert.True(t, c.IsIRQPending())

	cycles := c.Step()
	assert.Equal(t, irqCycles+4, cycles)
	assert.Equal(t, uint16(0x0039), c.GetPC())
	assert.False(t, c.IsIRQPending())
	assert.Equal(t, uint8(0x02), bus.mem[c.GetSP()], "return address is the instruction after the NOP")
}

func TestDisableInterruptsAlsoSetsLatch(t *testing.T) {
	c, _, _ := newTestCPU(0xF3)
	c.iff1, c.iff2 = true, true

	c.Step()
	assert.False(t, c.GetIFF1())
	assert.False(t, c.GetIFF2())
	assert.True(t, c.GetEIDILast())
}

func TestInterruptLeavesIFF2Untouched(t *testing.T) {
	c, _, _ := newTestCPU(0x00)
	c.im = 1
	c.iff1, c.iff2 = true, true
	c.RequestInterrupt()

	c.Step()
	assert.False(t, c.GetIFF1())
	assert.True(t, c.GetIFF2())
}

func TestHaltWaitsForInterrupt(t *testing.T) {
	// EI; HALT
	c, bus, _ := newTestCPU(0xFB, 0x76)
	c.im = 1

	c.Step()
	c.Step()
	assert.True(t, c.IsHalted())
	assert.Equal(t, uint16(0x0001), c.GetPC())

	// halted: HALT keeps executing in place
	assert.Equal(t, 4, c.Step())
	assert.Equal(t, uint16(0x0001), c.GetPC())

	c.RequestInterrupt()
	c.Step()
	assert.False(t, c.IsHalted())
	assert.Equal(t, uint16(0x0039), c.GetPC())

	returnAddress := uint16(bus.mem[c.GetSP()]) | uint16(bus.mem[c.GetSP()+1])<<8
	assert.Equal(t, uint16(0x0002), returnAddress, "return lands after HALT")
}

func TestInterruptMode2(t *testing.T) {
	c, bus, _ := newTestCPU(0x00)
	c.im = 2
	c.i = 0x80
	c.iff1 = true
	bus.mem[0x80FF] = 0x34
	bus.mem[0x8100] = 0x12
	c.RequestInterrupt()

	cycles := c.Step()
	assert.Equal(t, im2Cycles+4, cycles)
	assert.Equal(t, uint16(0x1235), c.GetPC())
}

func TestInterruptModeSelection(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		mode   uint8
	}{
		{"IM 0", 0x46, 0},
		{"IM 1", 0x56, 1},
		{"IM 2", 0x5E, 2},
		{"IM 1 mirror", 0x76, 1},
		{"IM 2 mirror", 0x7E, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestCPU(0xED, tt.opcode)
			c.im = 0xFF

			assert.Equal(t, 8, c.Step())
			assert.Equal(t, tt.mode, c.GetIM())
		})
	}
}

func TestNMIAndRETN(t *testing.T) {
	c, bus, _ := newTestCPU()
	bus.mem[0x0100] = 0x00
	bus.mem[0x0066] = 0x00
	bus.mem[0x0067] = 0xED
	bus.mem[0x0068] = 0x45
	c.SetPC(0x0100)
	c.iff1, c.iff2 = true, true

	c.RequestNMI()
	cycles := c.Step()
	assert.Equal(t, nmiCycles+4, cycles)
	assert.Equal(t, uint16(0x0067), c.GetPC())
	assert.False(t, c.GetIFF1())
	assert.True(t, c.GetIFF2())

	assert.Equal(t, 14, c.Step())
	assert.Equal(t, uint16(0x0100), c.GetPC())
	assert.True(t, c.GetIFF1(), "RETN restores IFF1 from IFF2")
}

func TestNMIIgnoresIFF1(t *testing.T) {
	c, _, _ := newTestCPU()
	c.SetPC(0x0200)

	c.RequestNMI()
	c.Step()
	assert.Equal(t, uint16(0x0067), c.GetPC())
}
