package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/backend/headless"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/memory"
	"github.com/valerio/go-mastersys/mastersys/video"
)

// scriptedBackend returns one batch of events per Update call.
type scriptedBackend struct {
	batches [][]backend.InputEvent
	calls   int
}

func (s *scriptedBackend) Init(backend.BackendConfig) error { return nil }
func (s *scriptedBackend) Cleanup() error                   { return nil }

func (s *scriptedBackend) Update(*video.FrameBuffer) ([]backend.InputEvent, error) {
	s.calls++
	if s.calls > len(s.batches) {
		return nil, nil
	}
	return s.batches[s.calls-1], nil
}

// Backend events go through the debouncing handler before reaching the joypad and callbacks.
func TestBackendEventsReachJoypad(t *testing.T) {
	joypad := memory.NewJoypad()
	manager := input.NewManager(joypad)

	pauses := 0
	manager.On(action.EmulatorPauseToggle, event.Press, func() { pauses++ })

	b := &scriptedBackend{batches: [][]backend.InputEvent{
		{
			{Action: action.P1Button1, Type: event.Press},
			{Action: action.EmulatorPauseToggle, Type: event.Press},
			{Action: action.EmulatorPauseToggle, Type: event.Press},
		},
		{
			{Action: action.P1Button1, Type: event.Release},
			{Action: action.P2Left, Type: event.Press},
		},
	}}

	frame := video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight)

	events, err := b.Update(frame)
	require.NoError(t, err)
	manager.Dispatch(events)

	assert.Equal(t, 1, pauses, "repeated press is debounced")
	assert.True(t, joypad.IsPressed(memory.Player1A))
	assert.Equal(t, uint8(0xEF), joypad.PortA(), "button 1 held, active low")

	events, err = b.Update(frame)
	require.NoError(t, err)
	manager.Dispatch(events)

	assert.False(t, joypad.IsPressed(memory.Player1A))
	assert.True(t, joypad.IsPressed(memory.Player2Left))
	assert.Equal(t, uint8(0xFF), joypad.PortA())
	assert.Equal(t, uint8(0), joypad.PortB()&0x01, "player 2 left is bit 0 of port B")
}

func TestHeadlessRunsThroughHandler(t *testing.T) {
	b := headless.New(3, headless.SnapshotConfig{})
	require.NoError(t, b.Init(backend.BackendConfig{Title: "Test"}))
	defer b.Cleanup()

	handler := input.NewHandler()
	frame := video.NewFrameBuffer(video.FramebufferWidth, video.FramebufferHeight)

	var quit bool
	for i := 0; i < 3 && !quit; i++ {
		events, err := b.Update(frame)
		require.NoError(t, err)

		for _, evt := range events {
			if handler.ProcessEvent(evt) && evt.Action == action.EmulatorQuit {
				quit = true
			}
		}
	}

	assert.True(t, quit)
	assert.Equal(t, 3, b.FrameCount())
}
