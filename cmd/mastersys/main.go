package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/urfave/cli"
	"github.com/valerio/go-mastersys/mastersys"
	"github.com/valerio/go-mastersys/mastersys/audio"
	"github.com/valerio/go-mastersys/mastersys/audio/speaker"
	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/backend/headless"
	"github.com/valerio/go-mastersys/mastersys/backend/sdl2"
	"github.com/valerio/go-mastersys/mastersys/backend/terminal"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/timing"
)

// audioQueueFrames is how many frames of samples may wait for the output device.
const audioQueueFrames = 4

func main() {
	app := cli.NewApp()
	app.Name = "mastersys"
	app.Description = "A Sega Master System emulator"
	app.Usage = "mastersys [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend: terminal, sdl2 or headless",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without any interface, same as --backend headless",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save a PNG snapshot every N frames in headless mode (0 = only the last frame)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.IntFlag{
			Name:  "frameskip",
			Usage: "Render one frame out of every N+1",
		},
		cli.StringFlag{
			Name:  "wav",
			Usage: "Record sound output to this WAV file",
		},
		cli.BoolFlag{
			Name:  "no-sound",
			Usage: "Disable sound output",
		},
		cli.StringFlag{
			Name:  "dump-dir",
			Usage: "Directory memory dumps are written to",
			Value: ".",
		},
		cli.StringFlag{
			Name:  "region",
			Usage: "Console region: export or japan",
			Value: "export",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging and show debug panels from the start",
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of emulation (for debugging display)",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

type options struct {
	romPath     string
	backendName string
	frames      int
	frameskip   int
	wavPath     string
	noSound     bool
	dumpDir     string
	japan       bool
	debug       bool
	testPattern bool

	snapshotInterval int
	snapshotDir      string
}

func parseOptions(c *cli.Context) (options, error) {
	opts := options{
		romPath:          c.String("rom"),
		backendName:      c.String("backend"),
		frames:           c.Int("frames"),
		frameskip:        c.Int("frameskip"),
		wavPath:          c.String("wav"),
		noSound:          c.Bool("no-sound"),
		dumpDir:          c.String("dump-dir"),
		debug:            c.Bool("debug"),
		testPattern:      c.Bool("test-pattern"),
		snapshotInterval: c.Int("snapshot-interval"),
		snapshotDir:      c.String("snapshot-dir"),
	}

	if c.Bool("headless") {
		opts.backendName = "headless"
	}
	switch opts.backendName {
	case "terminal", "sdl2", "headless":
	default:
		return opts, fmt.Errorf("unknown backend %q", opts.backendName)
	}

	switch c.String("region") {
	case "export":
	case "japan":
		opts.japan = true
	default:
		return opts, fmt.Errorf("unknown region %q", c.String("region"))
	}

	if opts.romPath == "" && c.NArg() > 0 {
		opts.romPath = c.Args().Get(0)
	}

	return opts, nil
}

func runEmulator(c *cli.Context) error {
	opts, err := parseOptions(c)
	if err != nil {
		return err
	}

	if opts.debug || opts.backendName == "headless" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Test pattern mode - no ROM needed
	if opts.testPattern {
		slog.Info("Running in test pattern mode")
		return runTestPattern(ctx, opts)
	}

	if opts.romPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no ROM path provided")
	}

	console, err := mastersys.NewWithFile(opts.romPath,
		mastersys.Region(opts.japan),
		mastersys.Frameskip(opts.frameskip),
	)
	if err != nil {
		return err
	}

	if opts.backendName == "headless" {
		return runHeadless(ctx, console, opts)
	}
	return runInteractive(ctx, console, opts)
}

func newBackend(name string, opts options) (backend.Backend, error) {
	switch name {
	case "terminal":
		return terminal.New(), nil
	case "sdl2":
		return sdl2.New(), nil
	case "headless":
		snapshots, err := headless.CreateSnapshotConfig(opts.snapshotInterval, opts.snapshotDir, opts.romPath)
		if err != nil {
			return nil, err
		}
		return headless.New(opts.frames, snapshots), nil
	}
	return nil, fmt.Errorf("unknown backend %q", name)
}

func runTestPattern(ctx context.Context, opts options) error {
	emu := mastersys.NewTestPatternEmulator()
	if opts.backendName != "headless" {
		limiter, err := timing.New(timing.KindAdaptive)
		if err != nil {
			return err
		}
		emu.SetFrameLimiter(limiter)
	}

	b, err := newBackend(opts.backendName, opts)
	if err != nil {
		return err
	}
	config := backend.BackendConfig{
		Title:       "Master System test pattern",
		TestPattern: true,
		ShowDebug:   opts.debug,
		DebugData:   emu.ExtractDebugData,
	}
	if err := b.Init(config); err != nil {
		return err
	}
	defer cleanup(b)

	return mastersys.RunLoop(ctx, emu, b)
}

// recordingConsole writes each frame's samples to a WAV file when running without a driver.
type recordingConsole struct {
	*mastersys.Console
	recorder *audio.WAVRecorder
}

func (r *recordingConsole) RunUntilFrame() error {
	if err := r.Console.RunUntilFrame(); err != nil {
		return err
	}
	return r.recorder.Write(r.Samples())
}

func runHeadless(ctx context.Context, console *mastersys.Console, opts options) error {
	b, err := newBackend("headless", opts)
	if err != nil {
		return err
	}
	if err := b.Init(backend.BackendConfig{Title: "Master System"}); err != nil {
		return err
	}
	defer cleanup(b)

	var emu mastersys.Emulator = console
	if opts.wavPath != "" {
		recorder, err := audio.NewWAVRecorder(opts.wavPath)
		if err != nil {
			return err
		}
		defer closeRecorder(recorder)
		emu = &recordingConsole{Console: console, recorder: recorder}
	}

	if err := mastersys.RunLoop(ctx, emu, b); err != nil {
		return err
	}

	slog.Info("Headless execution completed", "frames", console.FrameCount())
	return nil
}

// audioSink is implemented by backends that play the audio queue themselves.
type audioSink interface {
	AudioActive() bool
}

func runInteractive(ctx context.Context, console *mastersys.Console, opts options) error {
	b, err := newBackend(opts.backendName, opts)
	if err != nil {
		return err
	}

	var queue *audio.Queue
	if !opts.noSound {
		queue = audio.NewQueue(audioQueueFrames)
	}

	var driver *mastersys.Driver
	config := backend.BackendConfig{
		Title:     "Master System",
		ShowDebug: opts.debug,
		DebugData: func() *debug.Data { return driver.DebugData() },
		Callbacks: backend.BackendCallbacks{
			OnQuit: func() { slog.Info("Quit requested") },
		},
	}

	var out *speaker.Speaker
	if sink, ok := b.(audioSink); ok {
		config.AudioQueue = queue
		if err := b.Init(config); err != nil {
			return err
		}
		if !sink.AudioActive() {
			queue = nil
		}
	} else {
		if err := b.Init(config); err != nil {
			return err
		}
		if queue != nil {
			out, err = speaker.New(queue)
			if err != nil {
				slog.Warn("Sound output unavailable, continuing without sound", "error", err)
				queue = nil
			}
		}
	}
	defer cleanup(b)
	if out != nil {
		defer out.Close()
	}

	driverConfig := mastersys.DriverConfig{
		Audio: queue,
		Debug: opts.debug,
	}
	if queue == nil {
		limiter, err := timing.New(timing.KindAdaptive)
		if err != nil {
			return err
		}
		driverConfig.Limiter = limiter
	}
	if opts.wavPath != "" {
		recorder, err := audio.NewWAVRecorder(opts.wavPath)
		if err != nil {
			return err
		}
		defer closeRecorder(recorder)
		driverConfig.Recorder = recorder
	}

	driver = mastersys.NewDriver(console, driverConfig)

	manager := input.NewManager(console.Joypad())
	driver.BindActions(manager, opts.dumpDir)

	return mastersys.RunDriven(ctx, driver, b, manager)
}

func cleanup(b backend.Backend) {
	if err := b.Cleanup(); err != nil {
		slog.Warn("Backend cleanup failed", "error", err)
	}
}

func closeRecorder(r *audio.WAVRecorder) {
	if err := r.Close(); err != nil {
		slog.Error("Failed to finish WAV recording", "error", err)
	}
}
