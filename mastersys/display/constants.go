package display

import "github.com/valerio/go-mastersys/mastersys/video"

// RGBA pixel format constants
const (
	// RGBABytesPerPixel is the number of bytes per pixel in RGBA format
	RGBABytesPerPixel = 4
	RGBARShift        = 24
	RGBAGShift        = 16
	RGBABShift        = 8
	RGBAColorMask     = 0xFF
)

// Backend scaling and window constants
const (
	// DefaultPixelScale is the default scaling factor for console pixels
	DefaultPixelScale   = 3
	DefaultWindowWidth  = video.FramebufferWidth * DefaultPixelScale  // 768
	DefaultWindowHeight = video.FramebufferHeight * DefaultPixelScale // 576
)

// Test pattern constants
const (
	TestPatternCount           = 4
	TestPatternTileSize        = 8
	TestPatternStripeWidth     = 4
	TestPatternAnimationFrames = 30
	TestPatternStripeSpeed     = 2
	TestPatternDiagonalSpeed   = 4
)

// Colours used by the patterns, all of them reachable from CRAM.
const (
	White     uint32 = 0xFFFFFFFF
	LightGrey uint32 = 0xAAAAAAFF
	DarkGrey  uint32 = 0x555555FF
	Black     uint32 = video.BlackColor
)
