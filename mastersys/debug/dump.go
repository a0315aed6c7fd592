package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MemorySource exposes the memories written by DumpMemory.
type MemorySource interface {
	RAM() []uint8
	CartRAM() []uint8
	HasCartRAM() bool
	VRAM() []uint8
	CRAM() []uint8
}

// DumpMemory writes RAM, VRAM and CRAM (and cartridge RAM when it was ever enabled) verbatim
// to dir, creating it if needed. Returns the written paths.
func DumpMemory(dir string, src MemorySource) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating dump directory: %w", err)
	}

	files := []struct {
		name string
		data []uint8
	}{
		{"ram.bin", src.RAM()},
		{"vram.bin", src.VRAM()},
		{"cram.bin", src.CRAM()},
	}
	if src.HasCartRAM() {
		files = append(files, struct {
			name string
			data []uint8
		}{"cartram.bin", src.CartRAM()})
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}

	slog.Info("Memory dumped", "dir", dir, "files", len(paths))
	return paths, nil
}
