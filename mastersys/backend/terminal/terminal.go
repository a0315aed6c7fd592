package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/backend/terminal/render"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/video"
)

const (
	// defaultScale halves the picture in both directions so it fits an ordinary terminal.
	defaultScale   = 2
	registerHeight = 16
	disasmHeight   = 9
	logCapacity    = 200
	minPanelWidth  = 32
)

// Backend implements the Backend interface using tcell for terminal rendering.
// Each cell shows two vertically stacked pixels with true colour half blocks.
type Backend struct {
	screen    tcell.Screen
	config    backend.BackendConfig
	scale     int
	logBuffer *render.LogBuffer
	logLevel  slog.Level

	keys    *keyTracker
	pending []backend.InputEvent // non-controller actions since the last Update
	signals chan os.Signal
	quit    bool

	// Snapshot state
	currentFrame *video.FrameBuffer
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
	}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.scale = config.Scale
	if t.scale < 1 {
		t.scale = defaultScale
	}
	t.keys = newKeyTracker()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	t.screen = screen

	// logs go to a pane instead of the terminal
	t.logBuffer = render.NewLogBuffer(logCapacity)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))

	if config.TestPattern {
		slog.Info("Terminal backend initialized in test pattern mode")
	} else {
		slog.Info("Terminal backend initialized", "scale", t.scale)
	}

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update renders a frame and processes events
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	now := time.Now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	select {
	case sig := <-t.signals:
		slog.Info("Received signal, shutting down", "signal", sig)
		t.queue(action.EmulatorQuit)
	default:
	}

	events := append(t.keys.poll(now), t.pending...)
	t.pending = nil

	if t.quit {
		if t.config.Callbacks.OnQuit != nil {
			t.config.Callbacks.OnQuit()
		}
		return events, nil
	}

	if frame != nil {
		t.currentFrame = frame
		t.render(frame)
		t.screen.Show()
	}

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
	// logs would otherwise keep going to the discarded pane
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	return nil
}

func (t *Backend) queue(act action.Action) {
	if act == action.EmulatorQuit {
		t.quit = true
	}
	t.pending = append(t.pending, backend.InputEvent{Action: act, Type: event.Press})
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case '+', '=':
			t.changeLogLevel(-4)
			return
		case '-', '_':
			t.changeLogLevel(4)
			return
		}
	}

	act, ok := lookupKey(ev.Key(), ev.Rune())
	if !ok {
		return
	}

	if act.IsController() {
		t.keys.press(act, now)
		return
	}

	t.handleLocal(act)
	t.queue(act)
}

// handleLocal performs the part of an action that belongs to the terminal itself.
func (t *Backend) handleLocal(act action.Action) {
	switch act {
	case action.EmulatorSnapshot:
		debug.TakeSnapshot(t.currentFrame)
	case action.EmulatorDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		slog.Info("Debug display toggled", "enabled", t.config.ShowDebug)
	}
}

// changeLogLevel moves the log pane filter by delta, slog levels being 4 apart.
func (t *Backend) changeLogLevel(delta int) {
	level := t.logLevel + slog.Level(delta)
	if level < slog.LevelDebug || level > slog.LevelError {
		return
	}

	slog.Info("Log filter changed", "from", t.logLevel, "to", level)
	t.logLevel = level
}
