package memory

import (
	"github.com/valerio/go-mastersys/mastersys/addr"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionPaged
	regionRAM
	regionMirror
)

const (
	ramSize = 0x2000
	ramMask = ramSize - 1
	// blankPage backs the address space when no cartridge is inserted.
	blankPage = pageSize
)

// MMU is the Z80 view of memory: three cartridge windows, 8KB of system RAM mirrored once,
// and the paging registers at the very top of the address space.
type MMU struct {
	cart      *Cartridge
	mapper    *SegaMapper
	ram       [ramSize]uint8
	regionMap [256]memRegion
}

// New creates a memory unit with no cartridge inserted: the cartridge area reads as 0xFF.
func New() *MMU {
	blank := make([]uint8, blankPage)
	for i := range blank {
		blank[i] = 0xFF
	}

	mmu := &MMU{
		mapper: NewSegaMapper(blank),
	}
	initRegionMap(mmu)

	return mmu
}

// NewWithCartridge creates a memory unit with the provided cartridge loaded.
func NewWithCartridge(cart *Cartridge) *MMU {
	mmu := New()
	mmu.LoadCartridge(cart)

	return mmu
}

func initRegionMap(m *MMU) {
	for i := 0x00; i <= 0x7F; i++ {
		m.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0xBF; i++ {
		m.regionMap[i] = regionPaged
	}
	for i := 0xC0; i <= 0xDF; i++ {
		m.regionMap[i] = regionRAM
	}
	for i := 0xE0; i <= 0xFF; i++ {
		m.regionMap[i] = regionMirror
	}
}

// LoadCartridge inserts cart and resets the paging state.
func (m *MMU) LoadCartridge(cart *Cartridge) {
	m.cart = cart
	m.mapper = NewSegaMapper(cart.data)
	m.Reset()
}

// Reset clears system RAM and maps the first three ROM pages.
func (m *MMU) Reset() {
	m.ram = [ramSize]uint8{}
	m.mapper.Reset()
}

// ReadByte returns the byte at address.
func (m *MMU) ReadByte(address uint16) uint8 {
	switch m.regionMap[address>>8] {
	case regionROM, regionPaged:
		return m.mapper.Read(address)
	default:
		return m.ram[address&ramMask]
	}
}

// ReadSignedByte returns the byte at address as a two's complement displacement.
func (m *MMU) ReadSignedByte(address uint16) int8 {
	return int8(m.ReadByte(address))
}

// WriteByte stores value at address. Writes to ROM are dropped silently, software does this all the time.
// Writes to the paging registers also land in the RAM they overlay, so reading them back works.
func (m *MMU) WriteByte(address uint16, value uint8) {
	switch m.regionMap[address>>8] {
	case regionROM:
		return
	case regionPaged:
		m.mapper.Write(address, value)
	case regionRAM:
		m.ram[address&ramMask] = value
	case regionMirror:
		m.ram[address&ramMask] = value
		if address >= addr.RAMControl {
			m.mapper.WriteControl(address, value)
		}
	}
}

// Cartridge returns the inserted cartridge, nil if none.
func (m *MMU) Cartridge() *Cartridge {
	return m.cart
}

// Mapper exposes the paging chip for inspection.
func (m *MMU) Mapper() *SegaMapper {
	return m.mapper
}

// RAM returns the 8KB of system RAM.
func (m *MMU) RAM() []uint8 {
	return m.ram[:]
}

// CartRAM returns the 32KB of cartridge RAM.
func (m *MMU) CartRAM() []uint8 {
	return m.mapper.cartRAM[:]
}

// HasCartRAM reports whether the cartridge RAM has ever been enabled since the last reset.
func (m *MMU) HasCartRAM() bool {
	return m.mapper.hasCartRAM
}

// Snapshot returns the full 64KB address space as the CPU currently sees it.
func (m *MMU) Snapshot() []uint8 {
	snapshot := make([]uint8, 0x10000)
	for i := range snapshot {
		snapshot[i] = m.ReadByte(uint16(i))
	}
	return snapshot
}
