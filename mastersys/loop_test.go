package mastersys

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/debug"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/memory"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// funcBackend calls update for every frame it is given.
type funcBackend struct {
	update func(calls int, frame *video.FrameBuffer) ([]backend.InputEvent, error)
	calls  int
}

func (f *funcBackend) Init(backend.BackendConfig) error { return nil }
func (f *funcBackend) Cleanup() error                   { return nil }

func (f *funcBackend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	f.calls++
	return f.update(f.calls, frame)
}

type handledAction struct {
	act     action.Action
	pressed bool
}

type recordingEmulator struct {
	*TestPatternEmulator
	handled []handledAction
}

func (r *recordingEmulator) HandleAction(act action.Action, pressed bool) {
	r.handled = append(r.handled, handledAction{act, pressed})
	r.TestPatternEmulator.HandleAction(act, pressed)
}

func press(act action.Action) backend.InputEvent {
	return backend.InputEvent{Action: act, Type: event.Press}
}

func TestRunLoop(t *testing.T) {
	tests := []struct {
		name      string
		events    []backend.InputEvent
		wantCalls int
		wantSeen  []handledAction
	}{
		{
			name:      "quit stops the loop",
			events:    []backend.InputEvent{press(action.EmulatorQuit)},
			wantCalls: 1,
		},
		{
			name: "controller events are passed through",
			events: []backend.InputEvent{
				press(action.P1Button1),
				{Action: action.P1Button1, Type: event.Hold},
				{Action: action.P1Button1, Type: event.Release},
				press(action.EmulatorQuit),
			},
			wantCalls: 1,
			wantSeen: []handledAction{
				{action.P1Button1, true},
				{action.P1Button1, true},
				{action.P1Button1, false},
			},
		},
		{
			name:      "no events runs until quit",
			wantCalls: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emu := &recordingEmulator{TestPatternEmulator: NewTestPatternEmulator()}
			b := &funcBackend{update: func(calls int, frame *video.FrameBuffer) ([]backend.InputEvent, error) {
				assert.NotNil(t, frame)
				if calls == 1 && len(tt.events) > 0 {
					return tt.events, nil
				}
				if calls == 5 {
					return []backend.InputEvent{press(action.EmulatorQuit)}, nil
				}
				return nil, nil
			}}

			require.NoError(t, RunLoop(context.Background(), emu, b))
			assert.Equal(t, tt.wantCalls, b.calls)
			assert.Equal(t, tt.wantSeen, emu.handled)
		})
	}
}

func TestRunLoopErrors(t *testing.T) {
	t.Run("backend failure", func(t *testing.T) {
		boom := errors.New("boom")
		b := &funcBackend{update: func(int, *video.FrameBuffer) ([]backend.InputEvent, error) {
			return nil, boom
		}}
		assert.ErrorIs(t, RunLoop(context.Background(), NewTestPatternEmulator(), b), boom)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		b := &funcBackend{update: func(calls int, _ *video.FrameBuffer) ([]backend.InputEvent, error) {
			if calls == 3 {
				cancel()
			}
			return nil, nil
		}}
		require.NoError(t, RunLoop(ctx, NewTestPatternEmulator(), b))
		assert.Equal(t, 3, b.calls)
	})
}

func TestTestPatternEmulatorCycles(t *testing.T) {
	emu := NewTestPatternEmulator()
	emu.HandleAction(action.EmulatorTestPatternCycle, true)
	assert.Equal(t, 1, emu.Pattern())
	emu.HandleAction(action.EmulatorTestPatternCycle, false)
	assert.Equal(t, 1, emu.Pattern())

	require.NoError(t, emu.RunUntilFrame())
	data := emu.ExtractDebugData()
	assert.Equal(t, debug.DebuggerRunning, data.DebuggerState)
	assert.Nil(t, data.CPU)
}

func TestRunDriven(t *testing.T) {
	c := newTestConsole(t, nil, nil)
	d := NewDriver(c, DriverConfig{})
	m := input.NewManager(c.Joypad())
	d.BindActions(m, t.TempDir())

	b := &funcBackend{update: func(calls int, frame *video.FrameBuffer) ([]backend.InputEvent, error) {
		switch {
		case calls == 1:
			return []backend.InputEvent{press(action.P1Button2), press(action.EmulatorPauseToggle)}, nil
		case d.Paused():
			// paused frames keep coming so input is still polled
			return []backend.InputEvent{press(action.EmulatorQuit)}, nil
		}
		return nil, nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, RunDriven(ctx, d, b, m))
	<-d.Done()

	assert.True(t, d.Paused())
	assert.True(t, c.Joypad().IsPressed(memory.Player1B))
	assert.NoError(t, ctx.Err(), "quit came from the backend, not the timeout")
}

func TestRunDrivenBackendError(t *testing.T) {
	d := NewDriver(newTestConsole(t, nil, nil), DriverConfig{})
	boom := errors.New("boom")
	b := &funcBackend{update: func(int, *video.FrameBuffer) ([]backend.InputEvent, error) {
		return nil, boom
	}}

	err := RunDriven(context.Background(), d, b, input.NewManager(memory.NewJoypad()))
	assert.ErrorIs(t, err, boom)
	<-d.Done()
}
