package debug

import (
	"fmt"

	"github.com/valerio/go-mastersys/mastersys/video"
)

const (
	TileCount       = 512
	TileDataSize    = 32
	TilePixelWidth  = 8
	TilePixelHeight = 8
	TilesPerRow     = 32
	TileRows        = TileCount / TilesPerRow
)

// TilePattern is one decoded 8x8 tile, each pixel a 4 bit colour index.
type TilePattern struct {
	Index  int
	Pixels [TilePixelHeight][TilePixelWidth]uint8
}

// VRAMData is a decoded view of the pattern memory and palettes.
type VRAMData struct {
	Tiles          []TilePattern
	Palette        [32]uint32
	NameTable      uint16
	SpriteTable    uint16
	SpritePatterns uint16
}

// ExtractVRAMData decodes all tiles from vram and converts the palettes in cram.
func ExtractVRAMData(vram, cram []uint8, registers [16]uint8) *VRAMData {
	data := &VRAMData{
		Tiles:          make([]TilePattern, TileCount),
		NameTable:      uint16(registers[2]&0x0E) << 10,
		SpriteTable:    uint16(registers[5]&0x7E) << 7,
		SpritePatterns: uint16(registers[6]&0x04) << 11,
	}

	for i := range data.Tiles {
		data.Tiles[i] = decodeTile(vram, i)
	}
	for i := range data.Palette {
		if i < len(cram) {
			data.Palette[i] = video.ColorFromCRAM(cram[i])
		}
	}

	return data
}

func decodeTile(vram []uint8, index int) TilePattern {
	tile := TilePattern{Index: index}
	base := index * TileDataSize

	for row := 0; row < TilePixelHeight; row++ {
		planes := vram[base+row*4 : base+row*4+4]
		for col := 0; col < TilePixelWidth; col++ {
			shift := uint(7 - col)
			tile.Pixels[row][col] = (planes[0]>>shift)&1 |
				((planes[1]>>shift)&1)<<1 |
				((planes[2]>>shift)&1)<<2 |
				((planes[3]>>shift)&1)<<3
		}
	}

	return tile
}

// Color returns the colour of a tile pixel drawn with the background (0) or sprite (1) palette.
func (data *VRAMData) Color(tile, row, col, palette int) uint32 {
	return data.Palette[palette*16+int(data.Tiles[tile].Pixels[row][col])]
}

func (data *VRAMData) GetTileGrid() [][]TilePattern {
	grid := make([][]TilePattern, TileRows)

	for row := 0; row < TileRows; row++ {
		grid[row] = data.Tiles[row*TilesPerRow : (row+1)*TilesPerRow]
	}

	return grid
}

func (data *VRAMData) FormatSummary() string {
	return fmt.Sprintf("Name table: 0x%04X | Sprite table: 0x%04X | Sprite patterns: 0x%04X",
		data.NameTable, data.SpriteTable, data.SpritePatterns)
}
