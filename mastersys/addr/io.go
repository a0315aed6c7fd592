package addr

// Memory map
const (
	// ROMEnd is the end (exclusive) of the three 16KB cartridge windows.
	ROMEnd uint16 = 0xC000
	// FixedROMEnd is the end of the first 1KB of ROM that never gets paged out.
	FixedROMEnd uint16 = 0x0400
	// RAMStart is the first byte of the 8KB system RAM.
	RAMStart uint16 = 0xC000
	// RAMMirrorStart is where system RAM starts mirroring.
	RAMMirrorStart uint16 = 0xE000
	// CartRAMStart is the start of the window that can be backed by cartridge RAM.
	CartRAMStart uint16 = 0x8000

	// RAMControl selects cartridge RAM enable (bit 3) and bank (bit 2).
	RAMControl uint16 = 0xFFFC
	// Page0 selects the ROM page mapped at 0x0000-0x3FFF.
	Page0 uint16 = 0xFFFD
	// Page1 selects the ROM page mapped at 0x4000-0x7FFF.
	Page1 uint16 = 0xFFFE
	// Page2 selects the ROM page mapped at 0x8000-0xBFFF.
	Page2 uint16 = 0xFFFF
)

// Interrupt vectors
const (
	// IRQVector is the restart address for maskable interrupts in modes 0 and 1.
	IRQVector uint16 = 0x0038
	// NMIVector is the restart address for the non-maskable interrupt.
	NMIVector uint16 = 0x0066
)

// I/O ports, after masking to the low byte.
const (
	// PortRegion is the automatic nationalisation port.
	PortRegion uint8 = 0x3F
	// PortVCounter reads the current scanline, writes go to the PSG.
	PortVCounter uint8 = 0x7E
	// PortHCounter is unimplemented and mirrors the V counter.
	PortHCounter uint8 = 0x7F
	// PortPSG is the sound chip write port (mirrored at 0x7E).
	PortPSG uint8 = 0x7F
	// PortVDPData is the VDP data port.
	PortVDPData uint8 = 0xBE
	// PortVDPControl is the VDP control port.
	PortVDPControl uint8 = 0xBF
	// PortVDPControlMirror mirrors the VDP control port.
	PortVDPControlMirror uint8 = 0xBD
	// PortJoypadA returns the first joypad byte.
	PortJoypadA uint8 = 0xDC
	// PortJoypadAMirror mirrors PortJoypadA.
	PortJoypadAMirror uint8 = 0xC0
	// PortJoypadB returns the second joypad byte.
	PortJoypadB uint8 = 0xDD
	// PortJoypadBMirror mirrors PortJoypadB.
	PortJoypadBMirror uint8 = 0xC1
	// PortUnknownDE and PortUnknownDF are often touched by software and ignored.
	PortUnknownDE uint8 = 0xDE
	PortUnknownDF uint8 = 0xDF
)
