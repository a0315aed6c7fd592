package video

const (
	// FramebufferWidth is the width of the visible picture in pixels.
	FramebufferWidth = 256
	// FramebufferHeight is the height of the visible picture in pixels.
	FramebufferHeight = 192
)

// BlackColor is opaque black in the framebuffer's RGBA8888 format.
const BlackColor uint32 = 0x000000FF

// FrameBuffer holds one picture as RGBA8888 pixels (0xRRGGBBAA), row by row.
type FrameBuffer struct {
	width  uint
	height uint
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer with the specified size.
func NewFrameBuffer(width, height uint) *FrameBuffer {
	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: make([]uint32, width*height),
	}
}

func (fb FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, color uint32) {
	fb.buffer[y*fb.width+x] = color
}

// Line returns the pixels of row y, writes go straight to the buffer.
func (fb *FrameBuffer) Line(y uint) []uint32 {
	start := y * fb.width
	return fb.buffer[start : start+fb.width]
}

// Clear fills the whole buffer with color.
func (fb *FrameBuffer) Clear(color uint32) {
	for i := range fb.buffer {
		fb.buffer[i] = color
	}
}

// CopyFrom overwrites the buffer with the pixels of other, which must have the same size.
func (fb *FrameBuffer) CopyFrom(other *FrameBuffer) {
	copy(fb.buffer, other.buffer)
}

func (fb *FrameBuffer) Width() uint  { return fb.width }
func (fb *FrameBuffer) Height() uint { return fb.height }

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}
