package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spriteVRAM() []uint8 {
	vram := make([]uint8, 0x4000)
	table := 0x3F00

	vram[table+0] = 49
	vram[table+0x80] = 100
	vram[table+0x81] = 3

	vram[table+1] = 250
	vram[table+0x82] = 20
	vram[table+0x83] = 7

	vram[table+2] = 0xD0
	vram[table+3] = 60
	return vram
}

func TestExtractSprites(t *testing.T) {
	var registers [16]uint8
	registers[5] = 0x7E

	data := ExtractSprites(spriteVRAM(), registers, 55)
	require.Len(t, data.Sprites, 2, "table ends at the terminator")
	assert.Equal(t, 8, data.Height)
	assert.Equal(t, 1, data.ActiveSprites)

	first := data.Sprites[0]
	assert.Equal(t, 50, first.Y)
	assert.Equal(t, 100, first.X)
	assert.Equal(t, 3, first.Tile)
	assert.True(t, first.IsVisible)

	second := data.Sprites[1]
	assert.Equal(t, -5, second.Y, "wraps above the top edge")
	assert.False(t, second.IsVisible)

	visible := data.GetVisibleSprites()
	require.Len(t, visible, 1)
	assert.Equal(t, 0, visible[0].Index)
	assert.Contains(t, first.String(), "ACTIVE")
	assert.Contains(t, data.FormatSummary(), "Active Sprites: 1/8")
}

func TestExtractSpritesRegisterModes(t *testing.T) {
	var registers [16]uint8
	registers[0] = 0x08
	registers[1] = 0x02
	registers[5] = 0x7E
	registers[6] = 0x04

	data := ExtractSprites(spriteVRAM(), registers, 64)
	require.Len(t, data.Sprites, 2)
	assert.Equal(t, 16, data.Height)

	first := data.Sprites[0]
	assert.Equal(t, 92, first.X)
	assert.Equal(t, 0x102, first.Tile)
	assert.True(t, first.IsVisible, "tall sprites cover 16 lines")
}
