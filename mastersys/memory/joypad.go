package memory

import "sync/atomic"

// JoypadKey is a bit in one of the two joypad ports. Bits are active low: a pressed key reads as 0.
// Keys up to Player2Down live in port A (0xDC), the rest in port B (0xDD), stored shifted left by 8.
type JoypadKey uint16

const (
	Player1Up    JoypadKey = 0x01
	Player1Down  JoypadKey = 0x02
	Player1Left  JoypadKey = 0x04
	Player1Right JoypadKey = 0x08
	Player1A     JoypadKey = 0x10
	Player1B     JoypadKey = 0x20
	Player2Up    JoypadKey = 0x40
	Player2Down  JoypadKey = 0x80

	Player2Left  JoypadKey = 0x01 << 8
	Player2Right JoypadKey = 0x02 << 8
	Player2A     JoypadKey = 0x04 << 8
	Player2B     JoypadKey = 0x08 << 8
	ResetButton  JoypadKey = 0x10 << 8

	// regionBits are the two port B bits driven by the nationalisation port.
	regionBits = 0xC0 << 8
)

// Joypad holds the state of both controller ports. The UI goroutine presses and releases keys while the
// emulation goroutine reads the ports, so the state is kept in a single atomic word.
type Joypad struct {
	state atomic.Uint32
	japan bool
}

// NewJoypad creates a joypad with all keys released.
func NewJoypad() *Joypad {
	j := &Joypad{}
	j.Reset()

	return j
}

// Reset releases every key and restores the nationalisation bits.
func (j *Joypad) Reset() {
	j.state.Store(0xFFFF)
}

// SetJapanese selects a Japanese console, which reads the nationalisation bits back inverted.
func (j *Joypad) SetJapanese(japan bool) {
	j.japan = japan
}

// Press marks key as held down.
func (j *Joypad) Press(key JoypadKey) {
	j.state.And(^uint32(key))
}

// Release marks key as released.
func (j *Joypad) Release(key JoypadKey) {
	j.state.Or(uint32(key))
}

// IsPressed reports whether key is currently held.
func (j *Joypad) IsPressed(key JoypadKey) bool {
	return j.state.Load()&uint32(key) == 0
}

// PortA returns the byte read from port 0xDC.
func (j *Joypad) PortA() uint8 {
	return uint8(j.state.Load())
}

// PortB returns the byte read from port 0xDD.
func (j *Joypad) PortB() uint8 {
	return uint8(j.state.Load() >> 8)
}

// WriteNationalisation handles a write to port 0x3F: bit 5 shows up as port B bit 6 and bit 7 as port B bit 7.
// Software uses this to tell export and Japanese consoles apart.
func (j *Joypad) WriteNationalisation(value uint8) {
	bits := uint32(value&0x20)<<1 | uint32(value&0x80)
	if j.japan {
		bits ^= 0xC0
	}
	bits <<= 8

	for {
		old := j.state.Load()
		updated := old&^regionBits | bits
		if j.state.CompareAndSwap(old, updated) {
			return
		}
	}
}
