package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testNameTable   = 0x3800
	testSpriteTable = 0x3F00

	red   uint32 = 0xFF0000FF
	green uint32 = 0x00FF00FF
	blue  uint32 = 0x0000FFFF
	white uint32 = 0xFFFFFFFF
	black uint32 = 0x000000FF
)

// newRenderVDP returns a VDP with the default table bases and a palette of
// red (0/1), green (sprite 2), blue (sprite 1) and white (sprite 3).
func newRenderVDP() *VDP {
	v := New()
	v.cram[1] = 0x03
	v.cram[16+1] = 0x30
	v.cram[16+2] = 0x0C
	v.cram[16+3] = 0x3F

	// empty sprite table
	v.vram[testSpriteTable] = spriteTableEnd
	return v
}

// solidTile fills every line of a tile with a single colour index.
func solidTile(v *VDP, tile int, index uint8) {
	for line := 0; line < 8; line++ {
		for plane := 0; plane < 4; plane++ {
			value := uint8(0)
			if index&(1<<plane) != 0 {
				value = 0xFF
			}
			v.vram[tile<<5+line<<2+plane] = value
		}
	}
}

func setTile(v *VDP, row, column int, descriptor uint16) {
	entry := testNameTable + row<<6 + column<<1
	v.vram[entry] = uint8(descriptor)
	v.vram[entry+1] = uint8(descriptor >> 8)
}

func setSprite(v *VDP, n int, y, x, tile uint8) {
	v.vram[testSpriteTable+n] = y - 1
	v.vram[testSpriteTable+n+1] = spriteTableEnd
	v.vram[testSpriteTable+0x80+n*2] = x
	v.vram[testSpriteTable+0x81+n*2] = tile
}

func renderAt(v *VDP, scanline int) []uint32 {
	v.scanline = scanline
	v.RenderLine()
	return v.FrameBuffer().Line(uint(scanline))
}

func TestRenderBackgroundTile(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 1, 1)
	setTile(v, 0, 0, 0x0001)

	line := renderAt(v, 0)
	for x := 0; x < 8; x++ {
		assert.Equal(t, red, line[x], "x=%d", x)
	}
	assert.Equal(t, black, line[8])
}

func TestRenderHorizontalScroll(t *testing.T) {
	tests := []struct {
		name     string
		hscroll  uint8
		lockTop  bool
		scanline int
		first    int
	}{
		{"no scroll", 0, false, 0, 0},
		{"one tile", 8, false, 0, 8},
		{"fine scroll", 3, false, 0, 3},
		{"locked top rows", 8, true, 0, 0},
		{"lock only covers the top rows", 8, true, 16, 8},
		{"wraps around", 0xFC, false, 0, 252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newRenderVDP()
			solidTile(v, 1, 1)
			setTile(v, tt.scanline>>3, 0, 0x0001)
			v.registers[8] = tt.hscroll
			if tt.lockTop {
				v.registers[0] |= 0x40
			}

			line := renderAt(v, tt.scanline)
			for p := 0; p < 8; p++ {
				x := (tt.first + p) & 0xFF
				assert.Equal(t, red, line[x], "x=%d", x)
			}
			assert.Equal(t, black, line[(tt.first+8)&0xFF])
		})
	}
}

func TestRenderVerticalScroll(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 1, 1)
	setTile(v, 2, 0, 0x0001)
	v.registers[9] = 16

	line := renderAt(v, 0)
	assert.Equal(t, red, line[0])

	// right columns ignore vertical scroll when locked
	setTile(v, 2, 31, 0x0001)
	v.registers[0] |= 0x80
	line = renderAt(v, 0)
	assert.Equal(t, black, line[31*8])
	assert.Equal(t, red, line[0])
}

func TestRenderTileFlips(t *testing.T) {
	v := newRenderVDP()
	// tile 1: only the top left pixel uses colour 1
	v.vram[1<<5] = 0x80

	tests := []struct {
		name       string
		descriptor uint16
		scanline   int
		x          int
	}{
		{"plain", 0x0001, 0, 0},
		{"flip x", 0x0201, 0, 7},
		{"flip y", 0x0401, 7, 0},
		{"flip both", 0x0601, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setTile(v, 0, 0, tt.descriptor)
			line := renderAt(v, tt.scanline)
			assert.Equal(t, red, line[tt.x])
			for x := 0; x < 8; x++ {
				if x != tt.x {
					assert.Equal(t, black, line[x], "x=%d", x)
				}
			}
		})
	}
}

func TestRenderSprites(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 2, 2)
	solidTile(v, 3, 1)

	setSprite(v, 0, 10, 20, 2)
	setSprite(v, 1, 10, 24, 3)

	line := renderAt(v, 10)
	assert.Equal(t, black, line[19])
	for x := 20; x < 28; x++ {
		assert.Equal(t, green, line[x], "sprite 0 is in front at x=%d", x)
	}
	for x := 28; x < 32; x++ {
		assert.Equal(t, blue, line[x], "x=%d", x)
	}
	assert.NotZero(t, v.Status()&StatusSpriteCollide)
	assert.Zero(t, v.Status()&StatusSpriteOverflow)

	// below the 8 line sprite
	line = renderAt(v, 18)
	assert.Equal(t, black, line[20])
}

func TestRenderSpriteTableTerminator(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 2, 2)
	setSprite(v, 0, 10, 20, 2)
	v.vram[testSpriteTable] = spriteTableEnd

	line := renderAt(v, 10)
	assert.Equal(t, black, line[20])
}

func TestRenderSpriteOverflow(t *testing.T) {
	tests := []struct {
		name     string
		sprites  int
		overflow bool
	}{
		{"eight sprites", 8, false},
		{"nine sprites", 9, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newRenderVDP()
			solidTile(v, 2, 2)
			for n := 0; n < tt.sprites; n++ {
				setSprite(v, n, 10, uint8(n*16), 2)
			}

			line := renderAt(v, 10)
			assert.Equal(t, tt.overflow, v.Status()&StatusSpriteOverflow != 0)
			assert.Equal(t, green, line[7*16])
			if tt.overflow {
				assert.Equal(t, black, line[8*16], "ninth sprite is dropped")
			}
		})
	}
}

func TestRenderTallSprites(t *testing.T) {
	v := newRenderVDP()
	v.registers[1] = 0x02
	solidTile(v, 2, 2)
	solidTile(v, 3, 1)
	// odd tile numbers are rounded down, the second half comes from the next tile
	setSprite(v, 0, 10, 20, 3)

	assert.Equal(t, green, renderAt(v, 10)[20])
	assert.Equal(t, blue, renderAt(v, 18)[20])
	assert.Equal(t, black, renderAt(v, 26)[20])
}

func TestRenderSpriteShiftAndClip(t *testing.T) {
	tests := []struct {
		name   string
		shift  bool
		x      uint8
		drawn  []int
		hidden []int
	}{
		{"clipped at the right edge", false, 252, []int{252, 255}, []int{0, 251}},
		{"shifted left", true, 20, []int{12, 19}, []int{11, 20}},
		{"shifted off the left edge", true, 4, []int{0, 3}, []int{4, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newRenderVDP()
			if tt.shift {
				v.registers[0] = 0x08
			}
			solidTile(v, 2, 2)
			setSprite(v, 0, 10, tt.x, 2)

			line := renderAt(v, 10)
			for _, x := range tt.drawn {
				assert.Equal(t, green, line[x], "x=%d", x)
			}
			for _, x := range tt.hidden {
				assert.Equal(t, black, line[x], "x=%d", x)
			}
		})
	}
}

func TestRenderSpriteWrapsFromBottom(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 2, 2)
	// y = 249 is shown as starting 7 lines above the screen
	v.vram[testSpriteTable] = 248
	v.vram[testSpriteTable+1] = spriteTableEnd
	v.vram[testSpriteTable+0x80] = 40
	v.vram[testSpriteTable+0x81] = 2

	assert.Equal(t, green, renderAt(v, 0)[40])
	assert.Equal(t, black, renderAt(v, 1)[40])
}

func TestRenderBackgroundPriority(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 1, 1)
	solidTile(v, 2, 2)
	// high priority tile with colour 0 on its right half
	v.vram[4<<5] = 0xF0
	setTile(v, 1, 0, 0x1001)
	setTile(v, 1, 1, 0x1004)
	setSprite(v, 0, 8, 0, 2)
	setSprite(v, 1, 8, 8, 2)

	line := renderAt(v, 8)
	assert.Equal(t, red, line[0], "priority tile covers the sprite")
	assert.Equal(t, red, line[11])
	assert.Equal(t, green, line[12], "transparent background pixels never cover sprites")
}

func TestRenderLeftColumnBlank(t *testing.T) {
	v := newRenderVDP()
	solidTile(v, 1, 1)
	setTile(v, 0, 0, 0x0001)
	setTile(v, 0, 1, 0x0001)
	v.registers[0] = 0x20
	v.registers[7] = 0x03

	line := renderAt(v, 0)
	for x := 0; x < 8; x++ {
		assert.Equal(t, white, line[x], "x=%d", x)
	}
	assert.Equal(t, red, line[8])
}

func TestRenderOutsideActiveArea(t *testing.T) {
	v := newRenderVDP()
	before := append([]uint32(nil), v.FrameBuffer().ToSlice()...)

	v.scanline = FramebufferHeight
	v.RenderLine()
	assert.Equal(t, before, v.FrameBuffer().ToSlice())
}
