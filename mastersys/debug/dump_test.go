package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemory struct {
	ram, cartRAM, vram, cram []uint8
	hasCartRAM               bool
}

func (m *fakeMemory) RAM() []uint8     { return m.ram }
func (m *fakeMemory) CartRAM() []uint8 { return m.cartRAM }
func (m *fakeMemory) HasCartRAM() bool { return m.hasCartRAM }
func (m *fakeMemory) VRAM() []uint8    { return m.vram }
func (m *fakeMemory) CRAM() []uint8    { return m.cram }

func TestDumpMemory(t *testing.T) {
	src := &fakeMemory{
		ram:     []uint8{1, 2, 3},
		cartRAM: []uint8{4, 5},
		vram:    []uint8{6},
		cram:    []uint8{7, 8},
	}

	tests := []struct {
		name       string
		hasCartRAM bool
		files      []string
	}{
		{"without cartridge RAM", false, []string{"ram.bin", "vram.bin", "cram.bin"}},
		{"with cartridge RAM", true, []string{"ram.bin", "vram.bin", "cram.bin", "cartram.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "dump")
			src.hasCartRAM = tt.hasCartRAM

			paths, err := DumpMemory(dir, src)
			require.NoError(t, err)
			require.Len(t, paths, len(tt.files))

			for i, name := range tt.files {
				assert.Equal(t, filepath.Join(dir, name), paths[i])
			}

			ram, err := os.ReadFile(filepath.Join(dir, "ram.bin"))
			require.NoError(t, err)
			assert.Equal(t, src.ram, ram)

			_, err = os.Stat(filepath.Join(dir, "cartram.bin"))
			assert.Equal(t, tt.hasCartRAM, err == nil)
		})
	}
}

func TestDumpMemoryBadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := DumpMemory(filepath.Join(file, "dump"), &fakeMemory{})
	assert.Error(t, err)
}
