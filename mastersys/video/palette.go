package video

// colorScale expands a 2 bit colour component to 8 bits.
var colorScale = [4]uint32{0, 85, 170, 255}

// colorTable maps the 64 possible CRAM values (--BBGGRR) to RGBA8888.
var colorTable = func() [64]uint32 {
	var table [64]uint32
	for i := range table {
		r := colorScale[i&0x03]
		g := colorScale[(i>>2)&0x03]
		b := colorScale[(i>>4)&0x03]
		table[i] = r<<24 | g<<16 | b<<8 | 0xFF
	}
	return table
}()

// ColorFromCRAM converts a raw CRAM byte to an RGBA8888 pixel.
func ColorFromCRAM(value uint8) uint32 {
	return colorTable[value&0x3F]
}
