package video

const (
	tileColumns      = 32
	tileRows         = 28
	scrollWrapHeight = tileRows * 8
	maxSpritesOnLine = 8
	spriteCount      = 64
	spriteTableEnd   = 0xD0
	spritePalette    = 0x10
	lockedTopLines   = 16
	lockedColumn     = 24
)

// RenderLine draws the current scanline into the framebuffer. Layers are composited in hardware order:
// low priority background, sprites back to front, high priority background, then the left column blank.
func (v *VDP) RenderLine() {
	if v.scanline >= FramebufferHeight {
		return
	}

	line := v.framebuffer.Line(uint(v.scanline))

	v.renderBackground(line)
	v.renderSprites(line)

	for x := range line {
		if v.hasForeground[x] {
			line[x] = v.color(v.foreground[x])
		}
	}

	if v.registers[0]&0x20 != 0 {
		backdrop := v.color(spritePalette | v.registers[7]&0x0F)
		for x := 0; x < 8; x++ {
			line[x] = backdrop
		}
	}
}

func (v *VDP) color(index uint8) uint32 {
	return ColorFromCRAM(v.cram[index&(cramSize-1)])
}

// tilePixel combines one bit of each of the four bit planes into a colour index.
func tilePixel(planes [4]uint8, bit uint) uint8 {
	return (planes[0]>>bit)&1 |
		((planes[1]>>bit)&1)<<1 |
		((planes[2]>>bit)&1)<<2 |
		((planes[3]>>bit)&1)<<3
}

func (v *VDP) readPlanes(address int) [4]uint8 {
	return [4]uint8{
		v.vram[address&addressMask],
		v.vram[(address+1)&addressMask],
		v.vram[(address+2)&addressMask],
		v.vram[(address+3)&addressMask],
	}
}

func (v *VDP) renderBackground(line []uint32) {
	scanline := v.scanline
	nameTable := int(v.registers[2]&0x0E) << 10
	rowMask := 0x0F | int(v.registers[2]&0x01)<<4

	startColumn, fineX := 0, 0
	if scanline >= lockedTopLines || v.registers[0]&0x40 == 0 {
		hscroll := int(v.registers[8])
		startColumn = tileColumns - hscroll>>3
		fineX = hscroll & 7
	}

	vscroll := int(v.registers[9])
	if vscroll >= scrollWrapHeight {
		vscroll -= scrollWrapHeight
	}

	for i := 0; i < tileColumns; i++ {
		y := scanline + vscroll
		if i >= lockedColumn && v.registers[0]&0x80 != 0 {
			y = scanline
		}

		row := y >> 3
		if row >= tileRows {
			row -= tileRows
		}
		row &= rowMask
		tileLine := y & 7

		column := (i + startColumn) & (tileColumns - 1)
		entry := nameTable + row<<6 + column<<1
		descriptor := int(v.vram[entry&addressMask]) | int(v.vram[(entry+1)&addressMask])<<8

		tile := descriptor & 0x1FF
		flipX := descriptor&0x200 != 0
		flipY := descriptor&0x400 != 0
		palette := uint8(descriptor>>7) & spritePalette
		priority := descriptor&0x1000 != 0

		if flipY {
			tileLine = 7 - tileLine
		}
		planes := v.readPlanes(tile<<5 + tileLine<<2)

		for p := 0; p < 8; p++ {
			shift := uint(7 - p)
			if flipX {
				shift = uint(p)
			}
			index := tilePixel(planes, shift)

			x := (fineX + i*8 + p) & (FramebufferWidth - 1)
			if priority && index != 0 {
				v.foreground[x] = palette | index
				v.hasForeground[x] = true
				continue
			}

			v.hasForeground[x] = false
			line[x] = v.color(palette | index)
		}
	}
}

func (v *VDP) renderSprites(line []uint32) {
	scanline := v.scanline
	table := int(v.registers[5]&0x7E) << 7

	height := 8
	if v.registers[1]&0x02 != 0 {
		height = 16
	}

	var visible [maxSpritesOnLine]int
	count := 0
	for n := 0; n < spriteCount; n++ {
		rawY := int(v.vram[table+n])
		if rawY == spriteTableEnd {
			break
		}

		y := rawY + 1
		if y > FramebufferWidth-16 {
			// sprites near the bottom of the range wrap around to the top of the screen
			y -= FramebufferWidth
		}
		if scanline < y || scanline >= y+height {
			continue
		}

		if count == maxSpritesOnLine {
			v.status |= StatusSpriteOverflow
			break
		}
		visible[count] = n
		count++
	}

	for x := range v.spritePixel {
		v.spritePixel[x] = false
	}

	// lower numbered sprites are in front, so they are drawn last
	for k := count - 1; k >= 0; k-- {
		n := visible[k]
		y := int(v.vram[table+n]) + 1
		if y > FramebufferWidth-16 {
			y -= FramebufferWidth
		}

		x := int(v.vram[table+0x80+n*2])
		if v.registers[0]&0x08 != 0 {
			x -= 8
		}

		tile := int(v.vram[table+0x81+n*2])
		if height == 16 {
			tile &= 0xFE
		}
		tile |= int(v.registers[6]&0x04) << 6

		planes := v.readPlanes(tile<<5 + (scanline-y)<<2)
		for p := 0; p < 8; p++ {
			px := x + p
			if px < 0 || px >= FramebufferWidth {
				continue
			}

			index := tilePixel(planes, uint(7-p))
			if index == 0 {
				continue
			}

			if v.spritePixel[px] {
				v.status |= StatusSpriteCollide
			}
			v.spritePixel[px] = true
			line[px] = v.color(spritePalette | index)
		}
	}
}
