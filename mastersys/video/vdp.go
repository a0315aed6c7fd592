package video

const (
	vramSize      = 0x4000
	cramSize      = 0x20
	registerCount = 16
	addressMask   = vramSize - 1

	// ScanlinesPerFrame is the NTSC frame height, visible lines plus blanking.
	ScanlinesPerFrame = 262
	// VBlankLine is the line on which the frame interrupt is raised.
	VBlankLine = FramebufferHeight + 1
)

// Status register bits
const (
	StatusFrameInterrupt uint8 = 0x80
	StatusSpriteOverflow uint8 = 0x40
	StatusSpriteCollide  uint8 = 0x20
)

// Codes selected by the top two bits of the second control byte.
const (
	codeVRAMRead uint8 = iota
	codeVRAMWrite
	codeRegisterWrite
	codeCRAMWrite
)

// VDP is the video display processor: VRAM, CRAM, registers, the port protocol and the scanline renderer.
//
// The CPU talks to it through two ports. The control port takes two byte commands: the first byte is
// latched, the second one carries a 2 bit code and either the high address bits or a register number.
// The data port reads and writes VRAM (or CRAM) at the current address, which auto increments.
type VDP struct {
	vram      [vramSize]uint8
	cram      [cramSize]uint8
	registers [registerCount]uint8

	address    uint16
	code       uint8
	latch      uint8
	secondByte bool
	readBuffer uint8
	status     uint8

	scanline    int
	lineCounter int
	// vscrollBuffer holds writes to register 9, which only take effect at frame boundaries.
	vscrollBuffer uint8

	framebuffer *FrameBuffer

	// per line scratch space for the renderer
	foreground    [FramebufferWidth]uint8
	hasForeground [FramebufferWidth]bool
	spritePixel   [FramebufferWidth]bool
}

// New returns a VDP in its power-on state.
func New() *VDP {
	v := &VDP{
		framebuffer: NewFrameBuffer(FramebufferWidth, FramebufferHeight),
	}
	v.Reset()

	return v
}

// Reset clears memories and registers. Name table and sprite table bases get their usual defaults.
func (v *VDP) Reset() {
	v.vram = [vramSize]uint8{}
	v.cram = [cramSize]uint8{}
	v.registers = [registerCount]uint8{}
	v.registers[2] = 0x0E
	v.registers[5] = 0x7E

	v.address = 0
	v.code = 0
	v.latch = 0
	v.secondByte = false
	v.readBuffer = 0
	v.status = 0

	v.scanline = 0
	v.lineCounter = 0
	v.vscrollBuffer = 0

	v.framebuffer.Clear(BlackColor)
}

// WriteControl handles a byte written to the control port.
func (v *VDP) WriteControl(value uint8) {
	if !v.secondByte {
		v.latch = value
		v.secondByte = true
		return
	}
	v.secondByte = false

	v.code = value >> 6
	switch v.code {
	case codeVRAMRead:
		v.address = uint16(value&0x3F)<<8 | uint16(v.latch)
		// reads are served from a buffer filled ahead of time
		v.readBuffer = v.vram[v.address]
		v.address = (v.address + 1) & addressMask
	case codeRegisterWrite:
		v.writeRegister(value&0x0F, v.latch)
	default:
		v.address = uint16(value&0x3F)<<8 | uint16(v.latch)
	}
}

func (v *VDP) writeRegister(index, value uint8) {
	if index == 9 {
		v.vscrollBuffer = value
		return
	}
	v.registers[index] = value
}

// ReadControl returns the status register, clearing its flags and the control port latch.
func (v *VDP) ReadControl() uint8 {
	status := v.status
	v.status &= 0x1F
	v.secondByte = false

	return status
}

// WriteData stores value in VRAM, or CRAM after a code 3 command, and moves to the next address.
func (v *VDP) WriteData(value uint8) {
	v.secondByte = false

	if v.code == codeCRAMWrite {
		v.cram[v.address&(cramSize-1)] = value
	} else {
		v.vram[v.address] = value
	}
	v.address = (v.address + 1) & addressMask
}

// ReadData returns the buffered byte and refills the buffer from the current address.
func (v *VDP) ReadData() uint8 {
	v.secondByte = false

	value := v.readBuffer
	v.readBuffer = v.vram[v.address]
	v.address = (v.address + 1) & addressMask

	return value
}

// VCounter returns the value of the V counter port. Past line 0xDA the counter jumps back to 0xD5,
// so 262 lines fit in 8 bits and the last line reads 0xFF.
func (v *VDP) VCounter() uint8 {
	if v.scanline > 0xDA {
		return uint8(v.scanline - 6)
	}
	return uint8(v.scanline)
}

// LineInterruptTick decrements the line counter for an active line. On underflow the counter is reloaded
// from register 10, and true is returned if line interrupts are enabled.
func (v *VDP) LineInterruptTick() bool {
	v.lineCounter--
	if v.lineCounter >= 0 {
		return false
	}

	v.lineCounter = int(v.registers[10])
	return v.registers[0]&0x10 != 0
}

// ReloadLineCounter reloads the line counter from register 10, done on every line outside the active area.
func (v *VDP) ReloadLineCounter() {
	v.lineCounter = int(v.registers[10])
}

// BeginVBlank flags the frame interrupt in the status register. Returns true if frame interrupts are enabled.
func (v *VDP) BeginVBlank() bool {
	v.status |= StatusFrameInterrupt
	return v.registers[1]&0x20 != 0
}

// ApplyVScroll moves the buffered register 9 value into place.
func (v *VDP) ApplyVScroll() {
	v.registers[9] = v.vscrollBuffer
}

// NextLine moves to the following scanline, wrapping at the end of the frame.
// Returns true when a new frame starts.
func (v *VDP) NextLine() bool {
	v.scanline++
	if v.scanline == ScanlinesPerFrame {
		v.scanline = 0
		return true
	}
	return false
}

// DisplayEnabled reports whether register 1 has the display turned on.
func (v *VDP) DisplayEnabled() bool {
	return v.registers[1]&0x40 != 0
}

// BlankFrame clears the picture, used when the display is turned off.
func (v *VDP) BlankFrame() {
	v.framebuffer.Clear(BlackColor)
}

func (v *VDP) FrameBuffer() *FrameBuffer { return v.framebuffer }
func (v *VDP) Scanline() int             { return v.scanline }
func (v *VDP) Status() uint8             { return v.status }
func (v *VDP) Address() uint16           { return v.address }
func (v *VDP) Code() uint8               { return v.code }
func (v *VDP) LineCounter() int          { return v.lineCounter }
func (v *VDP) VScrollBuffer() uint8      { return v.vscrollBuffer }

// Register returns the value of register index (0-15).
func (v *VDP) Register(index int) uint8 { return v.registers[index] }

// Registers returns a copy of all registers.
func (v *VDP) Registers() [registerCount]uint8 { return v.registers }

// VRAM returns the 16KB of video memory.
func (v *VDP) VRAM() []uint8 { return v.vram[:] }

// CRAM returns the 32 bytes of colour memory.
func (v *VDP) CRAM() []uint8 { return v.cram[:] }

// AwaitingSecondByte reports whether the control port holds a latched first byte.
func (v *VDP) AwaitingSecondByte() bool { return v.secondByte }
