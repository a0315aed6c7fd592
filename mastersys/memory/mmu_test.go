package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-mastersys/mastersys/addr"
)

// pagedROM builds a ROM where every byte holds the number of its page.
func pagedROM(t *testing.T, pages int) *Cartridge {
	t.Helper()

	image := make([]byte, pages*pageSize)
	for i := range image {
		image[i] = uint8(i / pageSize)
	}

	cart, err := NewCartridge(image)
	require.NoError(t, err)
	return cart
}

func TestMMUResetMapping(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 8))

	assert.Equal(t, uint8(0), mmu.ReadByte(0x0000))
	assert.Equal(t, uint8(1), mmu.ReadByte(0x4000))
	assert.Equal(t, uint8(2), mmu.ReadByte(0x8000))
	assert.Equal(t, uint8(2), mmu.ReadByte(0xBFFF))
}

func TestMMUWithoutCartridge(t *testing.T) {
	mmu := New()

	assert.Equal(t, uint8(0xFF), mmu.ReadByte(0x0000))
	assert.Equal(t, uint8(0xFF), mmu.ReadByte(0xBFFF))
}

func TestMMUPaging(t *testing.T) {
	tests := []struct {
		name     string
		register uint16
		page     uint8
		address  uint16
		expected uint8
	}{
		{"window 1 page 5", addr.Page1, 5, 0x4000, 5},
		{"window 2 page 7", addr.Page2, 7, 0x8123, 7},
		{"page numbers wrap", addr.Page2, 11, 0x8000, 3},
		{"window 0 after the fixed area", addr.Page0, 4, 0x0400, 4},
		{"window 0 keeps the first 1KB", addr.Page0, 4, 0x03FF, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mmu := NewWithCartridge(pagedROM(t, 8))
			mmu.WriteByte(tt.register, tt.page)

			assert.Equal(t, tt.expected, mmu.ReadByte(tt.address))
		})
	}
}

func TestMMUPagingRegistersReadBack(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 4))
	mmu.WriteByte(addr.Page1, 3)

	assert.Equal(t, uint8(3), mmu.ReadByte(addr.Page1))
	assert.Equal(t, uint8(3), mmu.ReadByte(0xDFFE), "registers overlay the RAM mirror")
}

func TestMMURAMMirror(t *testing.T) {
	mmu := New()

	mmu.WriteByte(0xC010, 0x42)
	assert.Equal(t, uint8(0x42), mmu.ReadByte(0xE010))

	mmu.WriteByte(0xF000, 0x24)
	assert.Equal(t, uint8(0x24), mmu.ReadByte(0xD000))
}

func TestMMUIgnoresROMWrites(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 4))

	mmu.WriteByte(0x1000, 0x42)
	mmu.WriteByte(0x4000, 0x42)
	mmu.WriteByte(0x8000, 0x42)

	assert.Equal(t, uint8(0), mmu.ReadByte(0x1000))
	assert.Equal(t, uint8(1), mmu.ReadByte(0x4000))
	assert.Equal(t, uint8(2), mmu.ReadByte(0x8000))
}

func TestMMUCartRAM(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 8))
	assert.False(t, mmu.HasCartRAM())

	// enable, bank 0
	mmu.WriteByte(addr.RAMControl, 0x08)
	assert.True(t, mmu.HasCartRAM())
	mmu.WriteByte(0x8000, 0xAA)
	assert.Equal(t, uint8(0xAA), mmu.ReadByte(0x8000))

	// bank 1 is a separate 16KB
	mmu.WriteByte(addr.RAMControl, 0x0C)
	assert.Equal(t, uint8(0x00), mmu.ReadByte(0x8000))
	mmu.WriteByte(0x8000, 0xBB)
	assert.Equal(t, uint8(0xBB), mmu.CartRAM()[0x4000])
	assert.Equal(t, uint8(0xAA), mmu.CartRAM()[0x0000])

	// page writes while RAM is in show up once RAM is disabled
	mmu.WriteByte(addr.Page2, 6)
	assert.Equal(t, uint8(0xBB), mmu.ReadByte(0x8000))
	mmu.WriteByte(addr.RAMControl, 0x00)
	assert.Equal(t, uint8(6), mmu.ReadByte(0x8000))
	assert.True(t, mmu.HasCartRAM(), "latch survives disabling")
}

func TestMMUReset(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 8))
	mmu.WriteByte(addr.Page1, 7)
	mmu.WriteByte(0xC000, 0x99)

	mmu.Reset()
	assert.Equal(t, uint8(1), mmu.ReadByte(0x4000))
	assert.Equal(t, uint8(0), mmu.ReadByte(0xC000))
}

func TestMMUResetKeepsCartRAM(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 4))
	mmu.WriteByte(addr.RAMControl, 0x08)
	mmu.WriteByte(0x8000, 0x5A)

	mmu.Reset()
	assert.False(t, mmu.Mapper().RAMEnabled())

	mmu.WriteByte(addr.RAMControl, 0x08)
	assert.Equal(t, uint8(0x5A), mmu.ReadByte(0x8000))
}

func TestMMULoadCartridgeClearsCartRAM(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 4))
	mmu.WriteByte(addr.RAMControl, 0x08)
	mmu.WriteByte(0x8000, 0x5A)

	mmu.LoadCartridge(pagedROM(t, 4))
	mmu.WriteByte(addr.RAMControl, 0x08)
	assert.Equal(t, uint8(0), mmu.ReadByte(0x8000))
}

func TestMMUSnapshot(t *testing.T) {
	mmu := NewWithCartridge(pagedROM(t, 4))
	mmu.WriteByte(0xC000, 0x12)

	snapshot := mmu.Snapshot()
	require.Len(t, snapshot, 0x10000)
	assert.Equal(t, uint8(1), snapshot[0x4000])
	assert.Equal(t, uint8(0x12), snapshot[0xE000])
}

func TestReadSignedByte(t *testing.T) {
	mmu := New()
	mmu.WriteByte(0xC000, 0xFE)

	assert.Equal(t, int8(-2), mmu.ReadSignedByte(0xC000))
}
