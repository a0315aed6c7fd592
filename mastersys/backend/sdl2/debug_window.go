//go:build sdl2

package sdl2

import (
	"log/slog"
	"unsafe"

	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/display"
	"github.com/valerio/go-mastersys/mastersys/video"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	DebugWindowWidth  = 800
	DebugWindowHeight = 600
	DebugWindowTitle  = "Master System Debug Tools"

	tileSheetWidth  = debug.TilesPerRow * debug.TilePixelWidth
	tileSheetHeight = debug.TileRows * debug.TilePixelHeight
	tileSheetScale  = 2
	swatchSize      = 16
	margin          = 16
)

// DebugWindow shows the pattern memory, both palettes and where sprites sit on screen.
type DebugWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	visible  bool

	vramData   *debug.VRAMData
	spriteData *debug.SpriteData
	pixels     []uint32
}

func NewDebugWindow() *DebugWindow {
	return &DebugWindow{
		pixels: make([]uint32, tileSheetWidth*tileSheetHeight),
	}
}

func (dw *DebugWindow) Init() error {
	window, err := sdl.CreateWindow(
		DebugWindowTitle,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		DebugWindowWidth,
		DebugWindowHeight,
		sdl.WINDOW_HIDDEN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return err
	}
	dw.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		dw.window = nil
		return err
	}
	dw.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		tileSheetWidth,
		tileSheetHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		dw.window = nil
		return err
	}
	dw.texture = texture

	return nil
}

func (dw *DebugWindow) SetVisible(visible bool) {
	if dw.window == nil {
		return
	}
	dw.visible = visible
	if visible {
		dw.window.Show()
	} else {
		dw.window.Hide()
	}
}

func (dw *DebugWindow) IsVisible() bool {
	return dw.visible
}

func (dw *DebugWindow) IsInitialized() bool {
	return dw.window != nil
}

// Owns reports whether an SDL window event belongs to the debug window.
func (dw *DebugWindow) Owns(windowID uint32) bool {
	if dw.window == nil {
		return false
	}
	id, err := dw.window.GetID()
	return err == nil && id == windowID
}

// UpdateData decodes tiles and sprites from a debug snapshot.
func (dw *DebugWindow) UpdateData(data *debug.Data) {
	if data == nil || data.VDP == nil || len(data.VDP.VRAM) == 0 {
		return
	}

	vdp := data.VDP
	dw.vramData = debug.ExtractVRAMData(vdp.VRAM, vdp.CRAM[:], vdp.Registers)
	dw.spriteData = debug.ExtractSprites(vdp.VRAM, vdp.Registers, vdp.Scanline)
}

func (dw *DebugWindow) Render() error {
	if !dw.visible || dw.vramData == nil {
		return nil
	}

	dw.renderer.SetDrawColor(32, 32, 32, 255)
	dw.renderer.Clear()

	if err := dw.renderTileSheet(); err != nil {
		slog.Warn("Failed to update tile sheet", "error", err)
	}
	dw.renderPalettes()
	dw.renderSprites()

	dw.renderer.Present()
	return nil
}

// renderTileSheet draws all 512 patterns, the first half with the background palette
// and the second half, where sprite patterns usually live, with the sprite palette.
func (dw *DebugWindow) renderTileSheet() error {
	for i, tile := range dw.vramData.Tiles {
		palette := i / (debug.TileCount / 2)
		originX := (i % debug.TilesPerRow) * debug.TilePixelWidth
		originY := (i / debug.TilesPerRow) * debug.TilePixelHeight

		for row := 0; row < debug.TilePixelHeight; row++ {
			for col := 0; col < debug.TilePixelWidth; col++ {
				dw.pixels[(originY+row)*tileSheetWidth+originX+col] = dw.vramData.Color(tile.Index, row, col, palette)
			}
		}
	}

	if err := dw.texture.Update(nil, unsafe.Pointer(&dw.pixels[0]), tileSheetWidth*display.RGBABytesPerPixel); err != nil {
		return err
	}

	dst := &sdl.Rect{X: margin, Y: margin, W: tileSheetWidth * tileSheetScale, H: tileSheetHeight * tileSheetScale}
	return dw.renderer.Copy(dw.texture, nil, dst)
}

func (dw *DebugWindow) setColor(rgba uint32) {
	dw.renderer.SetDrawColor(uint8(rgba>>24), uint8(rgba>>16), uint8(rgba>>8), uint8(rgba))
}

func (dw *DebugWindow) renderPalettes() {
	y := int32(margin*2 + tileSheetHeight*tileSheetScale)
	for i, rgba := range dw.vramData.Palette {
		dw.setColor(rgba)
		dw.renderer.FillRect(&sdl.Rect{X: int32(margin + i*swatchSize), Y: y, W: swatchSize - 2, H: swatchSize - 2})
	}
}

// renderSprites outlines each sprite on a map of the screen, highlighting the ones on the current line.
func (dw *DebugWindow) renderSprites() {
	if dw.spriteData == nil {
		return
	}

	originX := int32(margin*2 + tileSheetWidth*tileSheetScale)
	originY := int32(margin)

	dw.renderer.SetDrawColor(128, 128, 128, 255)
	dw.renderer.DrawRect(&sdl.Rect{X: originX, Y: originY, W: video.FramebufferWidth, H: video.FramebufferHeight})

	for _, sprite := range dw.spriteData.Sprites {
		if sprite.IsVisible {
			dw.renderer.SetDrawColor(100, 220, 100, 255)
		} else {
			dw.renderer.SetDrawColor(90, 90, 90, 255)
		}
		dw.renderer.DrawRect(&sdl.Rect{
			X: originX + int32(sprite.X),
			Y: originY + int32(sprite.Y),
			W: debug.TilePixelWidth,
			H: int32(dw.spriteData.Height),
		})
	}

	// current line marker
	dw.renderer.SetDrawColor(220, 80, 80, 255)
	line := originY + int32(dw.spriteData.CurrentLine)
	dw.renderer.DrawLine(originX, line, originX+video.FramebufferWidth, line)
}

func (dw *DebugWindow) Cleanup() {
	if dw.texture != nil {
		dw.texture.Destroy()
	}
	if dw.renderer != nil {
		dw.renderer.Destroy()
	}
	if dw.window != nil {
		dw.window.Destroy()
	}
}
