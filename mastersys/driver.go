package mastersys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/valerio/go-mastersys/mastersys/audio"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/timing"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// CommandType is one of the control messages the emulation goroutine accepts.
type CommandType int

const (
	CmdPause CommandType = iota
	CmdResume
	CmdTogglePause
	CmdReset
	CmdLoadCartridge
	CmdSetFrameskip
	CmdToggleChannel
	CmdSoloChannel
	CmdUnmuteAll
	CmdToggleSound
	CmdDumpMemory
	CmdStepFrame
	CmdPressPause
	CmdToggleDebug
)

func (t CommandType) String() string {
	switch t {
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdTogglePause:
		return "toggle-pause"
	case CmdReset:
		return "reset"
	case CmdLoadCartridge:
		return "load-cartridge"
	case CmdSetFrameskip:
		return "set-frameskip"
	case CmdToggleChannel:
		return "toggle-channel"
	case CmdSoloChannel:
		return "solo-channel"
	case CmdUnmuteAll:
		return "unmute-all"
	case CmdToggleSound:
		return "toggle-sound"
	case CmdDumpMemory:
		return "dump-memory"
	case CmdStepFrame:
		return "step-frame"
	case CmdPressPause:
		return "press-pause"
	case CmdToggleDebug:
		return "toggle-debug"
	}
	return fmt.Sprintf("command(%d)", int(t))
}

// Command is a control message. Path is used by CmdLoadCartridge and CmdDumpMemory, Value by
// CmdSetFrameskip and the channel commands. If Reply is set, it must be buffered: it receives the
// outcome exactly once.
type Command struct {
	Type  CommandType
	Path  string
	Value int
	Reply chan<- error
}

// ErrDriverStopped is returned when sending to a driver that is no longer running.
var ErrDriverStopped = errors.New("driver stopped")

const commandQueueSize = 16

// DriverConfig holds the optional collaborators of a Driver.
type DriverConfig struct {
	// Audio receives every frame's samples, the driver blocks while it is full. Nil drops audio.
	Audio *audio.Queue
	// Recorder, if set, gets a copy of every frame's samples.
	Recorder *audio.WAVRecorder
	// Limiter paces frames when no audio queue does it. Defaults to no limiting.
	Limiter timing.Limiter
	// Debug publishes debug data after every frame from the start.
	Debug bool
}

// Driver runs a Console on its own goroutine. The UI talks to it through a command channel,
// receives frames through a latest-wins channel and audio through the bounded queue.
// Joypad state is shared directly since the joypad is atomic.
type Driver struct {
	console  *Console
	commands chan Command
	frames   chan *video.FrameBuffer
	free     chan *video.FrameBuffer
	done     chan struct{}

	audio    *audio.Queue
	recorder *audio.WAVRecorder
	limiter  timing.Limiter

	paused    atomic.Bool
	debugOn   atomic.Bool
	produced  atomic.Uint64
	stepFrame bool

	debugData atomic.Pointer[debug.Data]
}

// NewDriver creates a driver for console. Run must be called to start emulating.
func NewDriver(console *Console, config DriverConfig) *Driver {
	limiter := config.Limiter
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}

	d := &Driver{
		console:  console,
		commands: make(chan Command, commandQueueSize),
		frames:   make(chan *video.FrameBuffer, 1),
		free:     make(chan *video.FrameBuffer, 2),
		done:     make(chan struct{}),
		audio:    config.Audio,
		recorder: config.Recorder,
		limiter:  limiter,
	}
	d.debugOn.Store(config.Debug)

	return d
}

// Run emulates frames until ctx is cancelled. Commands are handled between frames only.
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.done)
	slog.Info("Emulation started")

	for {
		if ctx.Err() != nil {
			slog.Info("Emulation stopped", "frames", d.produced.Load())
			return nil
		}

		d.pollCommands()

		if d.paused.Load() && !d.stepFrame {
			// nothing to do until the next command
			select {
			case <-ctx.Done():
			case cmd := <-d.commands:
				d.handle(cmd)
			}
			continue
		}
		d.stepFrame = false

		if err := d.runFrame(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			return err
		}
	}
}

func (d *Driver) runFrame(ctx context.Context) error {
	d.console.RunFrame()
	d.produced.Add(1)
	d.publishFrame()

	if d.debugOn.Load() {
		d.debugData.Store(d.console.ExtractDebugData())
	}

	samples := d.console.Samples()
	if d.recorder != nil {
		if err := d.recorder.Write(samples); err != nil {
			slog.Error("Failed to record audio, recording stopped", "error", err)
			d.recorder = nil
		}
	}

	if d.audio != nil {
		// the audio device drains the queue at real time, which paces emulation
		return d.audio.Push(ctx, samples)
	}

	d.limiter.WaitForNextFrame()
	return nil
}

// publishFrame copies the framebuffer into a buffer the UI owns. A frame the UI never picked up
// is replaced by the new one.
func (d *Driver) publishFrame() {
	var fb *video.FrameBuffer
	select {
	case fb = <-d.frames:
	default:
		select {
		case fb = <-d.free:
		default:
			fb = video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight)
		}
	}

	fb.CopyFrom(d.console.GetCurrentFrame())
	d.frames <- fb
}

func (d *Driver) pollCommands() {
	for {
		select {
		case cmd := <-d.commands:
			d.handle(cmd)
		default:
			return
		}
	}
}

func (d *Driver) handle(cmd Command) {
	err := d.apply(cmd)
	if err != nil {
		slog.Error("Command failed", "command", cmd.Type, "error", err)
	} else {
		slog.Debug("Command handled", "command", cmd.Type)
	}

	if cmd.Reply != nil {
		cmd.Reply <- err
	}
}

func (d *Driver) apply(cmd Command) error {
	c := d.console

	switch cmd.Type {
	case CmdPause:
		d.paused.Store(true)
	case CmdResume:
		d.resume()
	case CmdTogglePause:
		if d.paused.Load() {
			d.resume()
		} else {
			d.paused.Store(true)
		}
	case CmdReset:
		c.Reset()
		d.drainAudio()
	case CmdLoadCartridge:
		if err := c.LoadCartridge(cmd.Path); err != nil {
			return err
		}
		d.drainAudio()
	case CmdSetFrameskip:
		if cmd.Value < 0 {
			return fmt.Errorf("invalid frameskip %d", cmd.Value)
		}
		c.SetFrameskip(cmd.Value)
	case CmdToggleChannel, CmdSoloChannel:
		if cmd.Value < 1 || cmd.Value > audio.ChannelCount {
			return fmt.Errorf("invalid sound channel %d", cmd.Value)
		}
		if cmd.Type == CmdToggleChannel {
			c.psg.ToggleChannel(cmd.Value)
		} else {
			c.psg.SoloChannel(cmd.Value)
		}
	case CmdUnmuteAll:
		c.psg.UnmuteAll()
	case CmdToggleSound:
		c.psg.ToggleEnabled()
	case CmdDumpMemory:
		if _, err := c.DumpMemory(cmd.Path); err != nil {
			return err
		}
	case CmdStepFrame:
		d.paused.Store(true)
		d.stepFrame = true
	case CmdPressPause:
		c.PressPause()
	case CmdToggleDebug:
		enabled := !d.debugOn.Load()
		d.debugOn.Store(enabled)
		if enabled {
			d.debugData.Store(c.ExtractDebugData())
		}
	default:
		return fmt.Errorf("unknown command %v", cmd.Type)
	}

	return nil
}

func (d *Driver) resume() {
	d.paused.Store(false)
	d.limiter.Reset()
}

// drainAudio drops queued samples of the previous game.
func (d *Driver) drainAudio() {
	if d.audio != nil {
		d.audio.Drain()
	}
}

// Send queues cmd for the emulation goroutine. It fails once the driver stopped.
func (d *Driver) Send(cmd Command) error {
	select {
	case <-d.done:
		return ErrDriverStopped
	default:
	}

	select {
	case d.commands <- cmd:
		return nil
	case <-d.done:
		return ErrDriverStopped
	}
}

// Do sends cmd and waits for its outcome.
func (d *Driver) Do(ctx context.Context, cmd Command) error {
	reply := make(chan error, 1)
	cmd.Reply = reply
	if err := d.Send(cmd); err != nil {
		return err
	}

	select {
	case err := <-reply:
		return err
	case <-d.done:
		return ErrDriverStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Frames delivers the most recent frame. Buffers can be handed back with Recycle once displayed.
func (d *Driver) Frames() <-chan *video.FrameBuffer { return d.frames }

// Recycle returns a displayed frame buffer for reuse.
func (d *Driver) Recycle(fb *video.FrameBuffer) {
	select {
	case d.free <- fb:
	default:
	}
}

// Done is closed when Run returns.
func (d *Driver) Done() <-chan struct{} { return d.done }

// DebugData returns the debug data published after the last frame, nil while debug is off.
func (d *Driver) DebugData() *debug.Data {
	if !d.debugOn.Load() {
		return nil
	}

	data := d.debugData.Load()
	if data == nil {
		return nil
	}

	view := *data
	if d.paused.Load() {
		view.DebuggerState = debug.DebuggerPaused
	}
	return &view
}

func (d *Driver) Paused() bool           { return d.paused.Load() }
func (d *Driver) FramesProduced() uint64 { return d.produced.Load() }
