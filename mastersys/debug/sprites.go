package debug

import "fmt"

const (
	SpriteCount       = 64
	MaxSpritesPerLine = 8
	spriteTableEnd    = 0xD0
)

type SpriteInfo struct {
	Index     int
	Y         int
	X         int
	Tile      int
	IsVisible bool
}

type SpriteData struct {
	Sprites       []SpriteInfo
	CurrentLine   int
	ActiveSprites int
	Height        int
}

// ExtractSprites decodes the sprite attribute table up to its terminator and marks the
// sprites that cover line.
func ExtractSprites(vram []uint8, registers [16]uint8, line int) *SpriteData {
	table := int(registers[5]&0x7E) << 7
	data := &SpriteData{
		Sprites:     make([]SpriteInfo, 0, SpriteCount),
		CurrentLine: line,
		Height:      8,
	}
	if registers[1]&0x02 != 0 {
		data.Height = 16
	}

	for n := 0; n < SpriteCount; n++ {
		rawY := vram[table+n]
		if rawY == spriteTableEnd {
			break
		}

		y := int(rawY) + 1
		if y > 240 {
			y -= 256
		}
		x := int(vram[table+0x80+n*2])
		if registers[0]&0x08 != 0 {
			x -= 8
		}

		tile := int(vram[table+0x81+n*2])
		if data.Height == 16 {
			tile &= 0xFE
		}
		tile |= int(registers[6]&0x04) << 6

		visible := line >= y && line < y+data.Height
		if visible {
			data.ActiveSprites++
		}

		data.Sprites = append(data.Sprites, SpriteInfo{Index: n, Y: y, X: x, Tile: tile, IsVisible: visible})
	}

	return data
}

func (s *SpriteInfo) String() string {
	status := "OFF"
	if s.IsVisible {
		status = "ACTIVE"
	}
	return fmt.Sprintf("Sprite %2d: Y=%3d X=%3d Tile=0x%03X [%s]", s.Index, s.Y, s.X, s.Tile, status)
}

func (data *SpriteData) GetVisibleSprites() []SpriteInfo {
	visible := make([]SpriteInfo, 0, data.ActiveSprites)
	for _, sprite := range data.Sprites {
		if sprite.IsVisible {
			visible = append(visible, sprite)
		}
	}
	return visible
}

func (data *SpriteData) FormatSummary() string {
	return fmt.Sprintf("Current Line: %d | Active Sprites: %d/%d | Height: %dpx",
		data.CurrentLine, data.ActiveSprites, MaxSpritesPerLine, data.Height)
}
