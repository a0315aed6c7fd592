package memory

import "github.com/valerio/go-mastersys/mastersys/addr"

const (
	pageSize     = 0x4000
	cartRAMSize  = 0x8000
	windowCount  = 3
	pageMask     = pageSize - 1
	windowShift  = 14
	ramBankShift = 14
)

// SegaMapper is the standard Sega paging chip. The 48KB cartridge area is split into three 16KB windows,
// each mapped to a ROM page selected by writing to 0xFFFD-0xFFFF. The first 1KB always shows page 0 so the
// interrupt vectors never move. The third window can be backed by 32KB of cartridge RAM instead (two 16KB banks),
// controlled through 0xFFFC.
type SegaMapper struct {
	rom   []uint8
	pages int

	// bank holds the ROM page selected for each window, already wrapped to the page count.
	bank [windowCount]int

	cartRAM    [cartRAMSize]uint8
	ramEnabled bool
	ramBank    int
	// hasCartRAM latches once cartridge RAM gets enabled, so dumps know it carries data.
	hasCartRAM bool
}

// NewSegaMapper creates a mapper over rom, which must hold a whole number of pages.
func NewSegaMapper(rom []uint8) *SegaMapper {
	m := &SegaMapper{
		rom:   rom,
		pages: len(rom) / pageSize,
	}
	m.Reset()

	return m
}

// Reset maps pages 0, 1 and 2 into the three windows and disables cartridge RAM.
// The RAM contents are battery backed and survive, only a new mapper starts blank.
func (m *SegaMapper) Reset() {
	for i := range m.bank {
		m.bank[i] = i % m.pages
	}
	m.ramEnabled = false
	m.ramBank = 0
	m.hasCartRAM = false
}

// Read returns the byte visible at address, which must be below 0xC000.
func (m *SegaMapper) Read(address uint16) uint8 {
	window := int(address >> windowShift)

	if window == 0 && address < addr.FixedROMEnd {
		return m.rom[address]
	}
	if window == 2 && m.ramEnabled {
		return m.cartRAM[m.ramBank<<ramBankShift|int(address&pageMask)]
	}

	return m.rom[m.bank[window]<<windowShift|int(address&pageMask)]
}

// Write stores value into cartridge RAM when it is paged in. ROM is never writable: returns false if
// the write was dropped.
func (m *SegaMapper) Write(address uint16, value uint8) bool {
	if address < addr.CartRAMStart || address >= addr.ROMEnd || !m.ramEnabled {
		return false
	}

	m.cartRAM[m.ramBank<<ramBankShift|int(address&pageMask)] = value
	return true
}

// WriteControl handles a write to one of the paging registers (0xFFFC-0xFFFF).
// Page numbers wrap around the amount of pages in the ROM.
func (m *SegaMapper) WriteControl(address uint16, value uint8) {
	switch address {
	case addr.RAMControl:
		m.ramEnabled = value&0x08 != 0
		m.ramBank = int(value>>2) & 1
		if m.ramEnabled {
			m.hasCartRAM = true
		}
	case addr.Page0:
		m.bank[0] = int(value) % m.pages
	case addr.Page1:
		m.bank[1] = int(value) % m.pages
	case addr.Page2:
		// remembered even while cartridge RAM is paged in, it shows up again once RAM is disabled
		m.bank[2] = int(value) % m.pages
	}
}

// Bank returns the ROM page currently selected for a window (0-2).
func (m *SegaMapper) Bank(window int) int {
	return m.bank[window]
}

// RAMEnabled reports whether cartridge RAM is paged into 0x8000-0xBFFF.
func (m *SegaMapper) RAMEnabled() bool {
	return m.ramEnabled
}

// Pages returns the number of 16KB ROM pages.
func (m *SegaMapper) Pages() int {
	return m.pages
}
