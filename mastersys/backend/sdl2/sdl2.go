//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/display"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/video"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the Backend interface using SDL2 bindings
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed renderer, see build tags (sdl2)
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.BackendConfig
	events   []backend.InputEvent

	audio *audioOutput

	// Snapshot state
	currentFrame *video.FrameBuffer

	debugWindow *DebugWindow
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{
		debugWindow: NewDebugWindow(),
	}
}

// Init initializes the SDL2 backend
func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config

	scale := config.Scale
	if scale < 1 {
		scale = display.DefaultPixelScale
	}

	flags := uint32(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if config.AudioQueue != nil {
		flags |= sdl.INIT_AUDIO
	}
	if err := sdl.Init(flags); err != nil {
		return fmt.Errorf("initializing SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if config.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	s.renderer = renderer

	// framebuffer pixels are 0xRRGGBBAA words, which is what RGBA8888 means to SDL
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}
	s.texture = texture

	if config.Fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			slog.Warn("Failed to switch to fullscreen", "error", err)
		}
	}

	if config.AudioQueue != nil {
		out, err := openAudio(config.AudioQueue)
		if err != nil {
			slog.Warn("Audio unavailable, continuing without sound", "error", err)
		} else {
			s.audio = out
		}
	}

	if config.ShowDebug {
		s.ToggleDebugWindow()
	}

	s.running = true
	slog.Info("SDL2 backend initialized", "scale", scale, "test_pattern", config.TestPattern, "audio", s.audio != nil)

	return nil
}

// Update renders a frame and processes events
func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	s.events = s.events[:0]

	for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
		s.handleEvent(evt)
	}

	events := append([]backend.InputEvent(nil), s.events...)
	if !s.running {
		return events, nil
	}

	if s.audio != nil {
		s.audio.feed()
	}

	if frame != nil {
		s.currentFrame = frame
		if err := s.renderFrame(frame); err != nil {
			return events, err
		}
	}

	if s.debugWindow.IsVisible() && s.config.DebugData != nil {
		s.debugWindow.UpdateData(s.config.DebugData())
		if err := s.debugWindow.Render(); err != nil {
			slog.Warn("Debug window render failed", "error", err)
		}
	}

	return events, nil
}

// Cleanup cleans up SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.audio != nil {
		s.audio.close()
	}
	s.debugWindow.Cleanup()
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) emit(act action.Action, typ event.Type) {
	s.events = append(s.events, backend.InputEvent{Action: act, Type: typ})
}

func (s *Backend) handleEvent(evt sdl.Event) {
	switch e := evt.(type) {
	case *sdl.QuitEvent:
		s.quit()

	case *sdl.WindowEvent:
		// closing the debug window only hides it
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			if s.debugWindow.Owns(e.WindowID) {
				s.debugWindow.SetVisible(false)
			} else {
				s.quit()
			}
		}

	case *sdl.KeyboardEvent:
		act, ok := keyMapping[e.Keysym.Sym]
		if !ok {
			return
		}

		switch {
		case e.Type == sdl.KEYUP:
			if act.IsController() {
				s.emit(act, event.Release)
			}
		case e.Repeat != 0:
			if act.IsController() {
				s.emit(act, event.Hold)
			}
		default:
			s.handleLocal(act)
			s.emit(act, event.Press)
		}
	}
}

func (s *Backend) quit() {
	if !s.running {
		return
	}
	s.running = false
	s.emit(action.EmulatorQuit, event.Press)
	if s.config.Callbacks.OnQuit != nil {
		s.config.Callbacks.OnQuit()
	}
}

// handleLocal performs the part of an action that belongs to the window itself.
func (s *Backend) handleLocal(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(s.currentFrame)
	case action.EmulatorDebugToggle:
		s.ToggleDebugWindow()
	case action.EmulatorQuit:
		s.running = false
	}
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	pixels := frame.ToSlice()
	pitch := int(frame.Width()) * display.RGBABytesPerPixel

	if err := s.texture.Update(nil, unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}

	s.renderer.SetDrawColor(0, 0, 0, 0xFF)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	return nil
}

// AudioActive reports whether Init opened an audio device that drains the queue.
func (s *Backend) AudioActive() bool { return s.audio != nil }

// ToggleDebugWindow shows/hides the debug window
func (s *Backend) ToggleDebugWindow() {
	if !s.debugWindow.IsInitialized() {
		if err := s.debugWindow.Init(); err != nil {
			slog.Warn("Failed to initialize debug window", "error", err)
			return
		}
	}

	visible := !s.debugWindow.IsVisible()
	s.debugWindow.SetVisible(visible)
	slog.Debug("Debug window visibility changed", "visible", visible)
}
