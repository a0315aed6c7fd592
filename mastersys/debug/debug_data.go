package debug

// CPUState contains all CPU register information for debugging
type CPUState struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	// shadow set
	AF2 uint16
	BC2 uint16
	DE2 uint16
	HL2 uint16

	IX uint16
	IY uint16
	SP uint16
	PC uint16
	I  uint8
	R  uint8

	IFF1   bool
	IFF2   bool
	IM     uint8
	Halted bool
	Cycles uint64
	Flags  string
	// Opcode is the instruction at PC, prefix in the high byte.
	Opcode uint16
}

// VDPState is a copy of the VDP registers and port state.
type VDPState struct {
	Registers   [16]uint8
	Status      uint8
	Scanline    int
	VCounter    uint8
	Address     uint16
	Code        uint8
	LineCounter int
	CRAM        [32]uint8
	// VRAM is a copy of video memory for the tile and sprite viewers.
	VRAM []uint8
}

// MemorySnapshot contains a snapshot of memory for disassembly
type MemorySnapshot struct {
	StartAddr uint16
	Bytes     []uint8
}

// DebuggerState represents the current debugger state
type DebuggerState int

const (
	DebuggerRunning DebuggerState = iota
	DebuggerPaused
	DebuggerStepFrame
)

func (s DebuggerState) String() string {
	switch s {
	case DebuggerPaused:
		return "PAUSED"
	case DebuggerStepFrame:
		return "STEP"
	}
	return "RUNNING"
}

// Data contains all debug information needed by debug displays
type Data struct {
	CPU           *CPUState
	VDP           *VDPState
	Audio         *AudioData
	Memory        *MemorySnapshot
	Banks         [3]int
	CartRAM       bool
	Frame         uint64
	DebuggerState DebuggerState
}
