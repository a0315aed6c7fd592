package render

// UpperHalfBlock draws the top pixel of a cell as foreground and the bottom one as background.
const UpperHalfBlock = '▀'

// PixelToRGB splits an RGBA8888 framebuffer pixel into its colour components.
func PixelToRGB(pixel uint32) (r, g, b int32) {
	return int32(pixel >> 24), int32(pixel >> 16 & 0xFF), int32(pixel >> 8 & 0xFF)
}

// Sample returns the pixel at (x, y) of a frame scaled down by scale, reading the top left source pixel
// of each block.
func Sample(pixels []uint32, width, x, y, scale int) uint32 {
	return pixels[(y*scale)*width+x*scale]
}

// Truncate cuts s to at most width runes, ending with "..." when something was dropped and there is room.
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(runes) <= width {
		return s
	}
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}
