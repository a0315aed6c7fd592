package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatMemory [0x10000]uint8

func (m *flatMemory) ReadByte(address uint16) uint8 { return m[address] }

func TestSnapshotAround(t *testing.T) {
	mem := &flatMemory{}
	mem[0x00FF] = 0xAB
	mem[0x0100] = 0xCD

	tests := []struct {
		name      string
		pc        uint16
		before    int
		size      int
		wantStart uint16
		wantLen   int
	}{
		{"centred", 0x0100, 16, 64, 0x00F0, 64},
		{"clipped at bottom", 0x0004, 16, 64, 0x0000, 64},
		{"clipped at top", 0xFFF0, 8, 64, 0xFFE8, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := SnapshotAround(mem, tt.pc, tt.before, tt.size)
			assert.Equal(t, tt.wantStart, snapshot.StartAddr)
			assert.Len(t, snapshot.Bytes, tt.wantLen)
		})
	}

	snapshot := SnapshotAround(mem, 0x0100, 16, 64)
	assert.Equal(t, uint8(0xAB), snapshot.Bytes[15])
	assert.Equal(t, uint8(0xCD), snapshot.Bytes[16])
}

func TestCreateDisassemblyCentresOnPC(t *testing.T) {
	mem := &flatMemory{}
	snapshot := SnapshotAround(mem, 0x0100, 16, 64)

	lines := CreateDisassembly(snapshot, 0x0100, 10)
	require.Len(t, lines, 10)

	assert.Equal(t, uint16(0x00FB), lines[0].Address)
	assert.Equal(t, uint16(0x0100), lines[5].Address)
	assert.True(t, lines[5].IsCurrent)
	assert.Equal(t, "NOP", lines[5].Instruction)

	for i, line := range lines {
		if i != 5 {
			assert.False(t, line.IsCurrent, "line %d", i)
		}
	}
}

func TestCreateDisassemblyResyncsOnPC(t *testing.T) {
	// LD A,0x00 starting one byte before pc
	snapshot := &MemorySnapshot{StartAddr: 0x0200, Bytes: []uint8{0x3E, 0x00, 0x00, 0x00}}

	lines := CreateDisassembly(snapshot, 0x0201, 10)
	require.Len(t, lines, 3)
	assert.Equal(t, uint16(0x0201), lines[0].Address)
	assert.True(t, lines[0].IsCurrent)
	assert.Equal(t, "NOP", lines[0].Instruction)
}

func TestCreateDisassemblyPCOutsideSnapshot(t *testing.T) {
	snapshot := &MemorySnapshot{StartAddr: 0x0200, Bytes: []uint8{0x00, 0x00, 0x00, 0x00}}

	lines := CreateDisassembly(snapshot, 0x0500, 3)
	require.Len(t, lines, 3)
	assert.Equal(t, uint16(0x0200), lines[0].Address)
	assert.Equal(t, uint16(0x0201), lines[1].Address)
	assert.Equal(t, "[PC outside snapshot range]", lines[2].Instruction)
	assert.True(t, lines[2].IsCurrent)
}

func TestCreateDisassemblyEmpty(t *testing.T) {
	assert.Nil(t, CreateDisassembly(nil, 0, 10))
	assert.Nil(t, CreateDisassembly(&MemorySnapshot{Bytes: []uint8{0}}, 0, 0))
}
