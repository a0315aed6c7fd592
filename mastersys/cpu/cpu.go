package cpu

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/addr"
	"github.com/valerio/go-mastersys/mastersys/bit"
)

// Bus is the memory side of the CPU's world.
type Bus interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, value uint8)
	ReadSignedByte(address uint16) int8
}

// PortIO is the I/O side of the CPU's world, reached through IN/OUT instructions.
// The full 16 bit port address is passed along; decoding is up to the implementation.
type PortIO interface {
	Read(port uint16) uint8
	Write(port uint16, value uint8)
}

// Flag is one of the 8 bits of the flag register (low part of AF).
// Some opcodes treat F as an opaque byte (PUSH/POP AF), so flags stay packed.
type Flag uint8

const (
	carryFlag     Flag = 0x01
	subFlag       Flag = 0x02
	parityFlag    Flag = 0x04 // overflow for arithmetic, even parity for logic
	xFlag         Flag = 0x08 // undocumented copy of bit 3
	halfCarryFlag Flag = 0x10
	yFlag         Flag = 0x20 // undocumented copy of bit 5
	zeroFlag      Flag = 0x40
	signFlag      Flag = 0x80

	overflowFlag = parityFlag
	xyFlags      = xFlag | yFlag
)

const (
	irqCycles = 13
	im2Cycles = 19
	nmiCycles = 11
)

// shadowRegisters is the alternate register set swapped in by EX AF,AF' and EXX.
type shadowRegisters struct {
	a, f, b, c, d, e, h, l uint8
}

// CPU is the main struct holding Z80 state
type CPU struct {
	// registers
	a  uint8
	f  uint8
	b  uint8
	c  uint8
	d  uint8
	e  uint8
	h  uint8
	l  uint8
	ix uint16
	iy uint16
	sp uint16
	pc uint16
	i  uint8
	r  uint8

	shadow shadowRegisters

	// interrupt state
	iff1       bool
	iff2       bool
	im         uint8
	irqPending bool
	nmiPending bool
	// eiDiLast is set by EI and DI and suppresses interrupt acceptance for one instruction.
	eiDiLast bool
	halted   bool

	// counter is the signed cycle budget consumed by Execute.
	counter       int
	cycles        uint64
	currentOpcode uint16

	bus Bus
	io  PortIO
}

// New returns a CPU wired to the given memory bus and port router, in its power-on state.
func New(bus Bus, io PortIO) *CPU {
	cpu := &CPU{
		bus: bus,
		io:  io,
	}
	cpu.Reset()

	return cpu
}

// Reset puts all registers back in their power-on state.
func (c *CPU) Reset() {
	c.setAF(0xFFFF)
	c.setBC(0xFFFF)
	c.setDE(0xFFFF)
	c.setHL(0xFFFF)
	c.shadow = shadowRegisters{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	c.ix = 0xFFFF
	c.iy = 0xFFFF
	c.sp = 0xFFFF
	c.pc = 0
	c.i = 0
	c.r = 0

	c.iff1 = false
	c.iff2 = false
	c.im = 0
	c.irqPending = false
	c.nmiPending = false
	c.eiDiLast = false
	c.halted = false

	c.counter = 0
	c.cycles = 0
	c.currentOpcode = 0
}

// Boot applies the register values left behind by the console BIOS before it jumps to the cartridge.
func (c *CPU) Boot() {
	c.sp = 0xDFF0
	c.f = uint8(zeroFlag)
	c.ix = 0
	c.iy = 0
}

// Execute adds budget cycles to the internal counter and runs instructions while it stays positive.
// Any overshoot is carried into the next call. Returns the cycles actually consumed.
func (c *CPU) Execute(budget int) int {
	c.counter += budget

	consumed := 0
	for c.counter > 0 {
		cycles := c.Step()
		c.counter -= cycles
		consumed += cycles
	}

	return consumed
}

// Step services a pending interrupt if one can be accepted, then executes a single instruction.
// Returns the amount of cycles that execution has taken.
func (c *CPU) Step() int {
	cycles := 0

	if c.nmiPending {
		cycles += c.serviceNMI()
	} else if c.irqPending && c.iff1 && !c.eiDiLast {
		cycles += c.serviceInterrupt()
	}

	c.eiDiLast = false

	opcode := c.fetchOpcode()
	c.currentOpcode = uint16(opcode)
	cycles += opcodes[opcode](c)

	c.cycles += uint64(cycles)

	return cycles
}

// RequestInterrupt asserts the maskable interrupt line. The request stays latched until accepted.
func (c *CPU) RequestInterrupt() {
	c.irqPending = true
}

// RequestNMI latches a non-maskable interrupt, serviced before the next instruction.
func (c *CPU) RequestNMI() {
	c.nmiPending = true
}

// serviceInterrupt accepts a maskable interrupt. IFF2 is left untouched, only IFF1 is cleared.
func (c *CPU) serviceInterrupt() int {
	c.leaveHalt()
	c.incrementR()

	c.iff1 = false
	c.irqPending = false

	switch c.im {
	case 2:
		// the data bus floats high during the acknowledge cycle, so the vector low byte is 0xFF
		vector := bit.Combine(c.i, 0xFF)
		c.pushStack(c.pc)
		c.pc = c.readWord(vector)
		return im2Cycles
	default:
		c.pushStack(c.pc)
		c.pc = addr.IRQVector
		return irqCycles
	}
}

func (c *CPU) serviceNMI() int {
	c.leaveHalt()
	c.incrementR()

	c.nmiPending = false
	c.iff2 = c.iff1
	c.iff1 = false

	c.pushStack(c.pc)
	c.pc = addr.NMIVector
	return nmiCycles
}

// leaveHalt wakes the CPU up, skipping past the HALT opcode it kept re-executing.
func (c *CPU) leaveHalt() {
	if c.halted {
		c.halted = false
		c.pc++
	}
}

// incrementR bumps the 7 bit memory refresh counter, bit 7 is preserved.
func (c *CPU) incrementR() {
	c.r = (c.r & 0x80) | ((c.r + 1) & 0x7F)
}

func (c *CPU) decrementR() {
	c.r = (c.r & 0x80) | ((c.r - 1) & 0x7F)
}

// fetchOpcode reads an opcode byte (an M1 cycle), which also refreshes R.
func (c *CPU) fetchOpcode() uint8 {
	opcode := c.bus.ReadByte(c.pc)
	c.pc++
	c.incrementR()
	return opcode
}

// unknownOpcode reports a dispatch miss. PC is already past the missing byte, so execution resumes there.
func (c *CPU) unknownOpcode(prefix string, opcode uint8) {
	slog.Warn("Unknown opcode",
		"pc", fmt.Sprintf("0x%04X", c.pc-1),
		"opcode", fmt.Sprintf("%s%02X", prefix, opcode))
}

// readImmediate returns the byte at PC (known as 'n' in mnemonics) and advances PC.
func (c *CPU) readImmediate() uint8 {
	n := c.bus.ReadByte(c.pc)
	c.pc++
	return n
}

// readImmediateWord returns the little endian word at PC ('nn' in mnemonics) and advances PC twice.
func (c *CPU) readImmediateWord() uint16 {
	low := c.bus.ReadByte(c.pc)
	high := c.bus.ReadByte(c.pc + 1)
	c.pc += 2
	return bit.Combine(high, low)
}

// readSignedImmediate returns the displacement at PC ('d' or 'e' in mnemonics) and advances PC.
func (c *CPU) readSignedImmediate() int8 {
	n := c.bus.ReadSignedByte(c.pc)
	c.pc++
	return n
}

func (c *CPU) read(address uint16) uint8 {
	return c.bus.ReadByte(address)
}

func (c *CPU) write(address uint16, value uint8) {
	c.bus.WriteByte(address, value)
}

func (c *CPU) readWord(address uint16) uint16 {
	low := c.bus.ReadByte(address)
	high := c.bus.ReadByte(address + 1)
	return bit.Combine(high, low)
}

func (c *CPU) writeWord(address uint16, value uint16) {
	c.bus.WriteByte(address, bit.Low(value))
	c.bus.WriteByte(address+1, bit.High(value))
}

func (c *CPU) in(port uint16) uint8 {
	return c.io.Read(port)
}

func (c *CPU) out(port uint16, value uint8) {
	c.io.Write(port, value)
}

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &= uint8(flag ^ 0xFF)
}

func (c CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

// flagToBit will return 1 if the passed flag is set, 0 otherwise
func (c CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}

	return 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if !condition {
		c.resetFlag(flag)
		return
	}

	c.setFlag(flag)
}

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	c.f = bit.Low(value)
}

func (c CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f)
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c CPU) getBC() uint16 {
	return bit.Combine(c.b, c.c)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c CPU) getDE() uint16 {
	return bit.Combine(c.d, c.e)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

func (c CPU) getHL() uint16 {
	return bit.Combine(c.h, c.l)
}

// Debug getter methods for register display
func (c *CPU) GetA() uint8       { return c.a }
func (c *CPU) GetF() uint8       { return c.f }
func (c *CPU) GetB() uint8       { return c.b }
func (c *CPU) GetC() uint8       { return c.c }
func (c *CPU) GetD() uint8       { return c.d }
func (c *CPU) GetE() uint8       { return c.e }
func (c *CPU) GetH() uint8       { return c.h }
func (c *CPU) GetL() uint8       { return c.l }
func (c *CPU) GetAF() uint16     { return c.getAF() }
func (c *CPU) GetBC() uint16     { return c.getBC() }
func (c *CPU) GetDE() uint16     { return c.getDE() }
func (c *CPU) GetHL() uint16     { return c.getHL() }
func (c *CPU) GetIX() uint16     { return c.ix }
func (c *CPU) GetIY() uint16     { return c.iy }
func (c *CPU) GetSP() uint16     { return c.sp }
func (c *CPU) GetPC() uint16     { return c.pc }
func (c *CPU) GetI() uint8       { return c.i }
func (c *CPU) GetR() uint8       { return c.r }
func (c *CPU) GetCycles() uint64 { return c.cycles }
func (c *CPU) GetCounter() int   { return c.counter }

// GetShadow returns the alternate AF, BC, DE and HL pairs.
func (c *CPU) GetShadow() (af, bc, de, hl uint16) {
	s := c.shadow
	return bit.Combine(s.a, s.f), bit.Combine(s.b, s.c), bit.Combine(s.d, s.e), bit.Combine(s.h, s.l)
}

// Interrupt state getters
func (c *CPU) GetIFF1() bool         { return c.iff1 }
func (c *CPU) GetIFF2() bool         { return c.iff2 }
func (c *CPU) GetIM() uint8          { return c.im }
func (c *CPU) IsHalted() bool        { return c.halted }
func (c *CPU) IsIRQPending() bool    { return c.irqPending }
func (c *CPU) GetEIDILast() bool     { return c.eiDiLast }
func (c *CPU) GetLastOpcode() uint16 { return c.currentOpcode }

// SetPC moves execution to the given address. Used by test harnesses and the debugger.
func (c *CPU) SetPC(pc uint16) { c.pc = pc }

// GetFlagString returns a human-readable representation of the flag register
func (c *CPU) GetFlagString() string {
	const names = "SZYHXPNC"
	flags := make([]byte, 8)
	for i := 0; i < 8; i++ {
		if c.f&(0x80>>i) != 0 {
			flags[i] = names[i]
		} else {
			flags[i] = '-'
		}
	}
	return string(flags)
}
