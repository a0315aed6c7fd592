package display

import "github.com/valerio/go-mastersys/mastersys/video"

// PatternNames holds a display name for each test pattern.
var PatternNames = [TestPatternCount]string{"Checkerboard", "Palette", "Stripes", "Diagonal"}

// DrawTestPattern fills fb with pattern kind. step moves the animated patterns (stripes and diagonal).
func DrawTestPattern(fb *video.FrameBuffer, kind, step int) {
	width, height := int(fb.Width()), int(fb.Height())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fb.SetPixel(uint(x), uint(y), patternPixel(kind%TestPatternCount, x, y, width, step))
		}
	}
}

func patternPixel(kind, x, y, width, step int) uint32 {
	switch kind {
	case 0:
		if ((x/TestPatternTileSize)+(y/TestPatternTileSize))%2 == 0 {
			return White
		}
		return Black
	case 1:
		// one bar per 6 bit CRAM colour
		return video.ColorFromCRAM(uint8(x * 64 / width))
	case 2:
		if ((x+step*TestPatternStripeSpeed)/TestPatternStripeWidth)%2 == 0 {
			return White
		}
		return DarkGrey
	default:
		if ((x+y+step*TestPatternDiagonalSpeed)/TestPatternTileSize)%2 == 0 {
			return LightGrey
		}
		return DarkGrey
	}
}
