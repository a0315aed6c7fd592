package mastersys

import (
	"context"
	"fmt"
	"time"

	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/timing"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// RunLoop alternates one emulated frame with one backend update on the calling goroutine, until the
// backend asks to quit or ctx is cancelled.
func RunLoop(ctx context.Context, emu Emulator, b backend.Backend) error {
	for ctx.Err() == nil {
		if err := emu.RunUntilFrame(); err != nil {
			return err
		}

		events, err := b.Update(emu.GetCurrentFrame())
		if err != nil {
			return fmt.Errorf("backend update: %w", err)
		}

		for _, evt := range events {
			if evt.Action == action.EmulatorQuit {
				return nil
			}
			emu.HandleAction(evt.Action, evt.Type != event.Release)
		}
	}

	return nil
}

// RunDriven runs d on its own goroutine and shows its frames on b from the calling goroutine, which
// some backends need to be the main one. Input is routed through m. While emulation is paused the
// last frame is shown again so the backend keeps polling input.
func RunDriven(ctx context.Context, d *Driver, b backend.Backend, m *input.Manager) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx) }()

	stop := func(err error) error {
		cancel()
		if runErr := <-errc; err == nil {
			err = runErr
		}
		return err
	}

	idle := time.NewTicker(2 * timing.FrameDuration())
	defer idle.Stop()

	var last *video.FrameBuffer
	fresh := false

	update := func(fb *video.FrameBuffer) (quit bool, err error) {
		events, err := b.Update(fb)
		if err != nil {
			return false, fmt.Errorf("backend update: %w", err)
		}
		for _, evt := range events {
			if evt.Action == action.EmulatorQuit {
				return true, nil
			}
			m.Trigger(evt.Action, evt.Type)
		}
		return false, nil
	}

	for {
		select {
		case <-ctx.Done():
			return stop(nil)
		case err := <-errc:
			return err
		case fb := <-d.Frames():
			if last != nil {
				d.Recycle(last)
			}
			last, fresh = fb, true

			if quit, err := update(fb); quit || err != nil {
				return stop(err)
			}
		case <-idle.C:
			if !fresh && last != nil {
				if quit, err := update(last); quit || err != nil {
					return stop(err)
				}
			}
			fresh = false
		}
	}
}
