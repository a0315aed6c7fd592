package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/memory"
)

func TestManagerDrivesJoypad(t *testing.T) {
	tests := []struct {
		act   action.Action
		key   memory.JoypadKey
		portB bool
	}{
		{action.P1Up, memory.Player1Up, false},
		{action.P1Button2, memory.Player1B, false},
		{action.P2Down, memory.Player2Down, false},
		{action.P2Left, memory.Player2Left, true},
		{action.P2Button1, memory.Player2A, true},
		{action.ConsoleReset, memory.ResetButton, true},
	}

	for _, tt := range tests {
		t.Run(tt.act.String(), func(t *testing.T) {
			joypad := memory.NewJoypad()
			m := NewManager(joypad)

			m.Trigger(tt.act, event.Press)
			assert.True(t, joypad.IsPressed(tt.key))
			if tt.portB {
				assert.Equal(t, uint8(0xFF)&^uint8(tt.key>>8), joypad.PortB())
			} else {
				assert.Equal(t, uint8(0xFF)&^uint8(tt.key), joypad.PortA())
			}

			m.Trigger(tt.act, event.Release)
			assert.False(t, joypad.IsPressed(tt.key))
		})
	}
}

func TestManagerCallbacks(t *testing.T) {
	m := NewManager(memory.NewJoypad())

	pressed, released := 0, 0
	m.On(action.EmulatorPauseToggle, event.Press, func() { pressed++ })
	m.On(action.EmulatorPauseToggle, event.Release, func() { released++ })

	m.Dispatch([]Event{
		{Action: action.EmulatorPauseToggle, Type: event.Press},
		{Action: action.EmulatorPauseToggle, Type: event.Release},
		{Action: action.EmulatorPauseToggle, Type: event.Press},
	})

	assert.Equal(t, 1, pressed, "second press is debounced")
	assert.Equal(t, 1, released)
}

func TestManagerControllerSkipsCallbacks(t *testing.T) {
	m := NewManager(memory.NewJoypad())

	called := false
	m.On(action.P1Button1, event.Press, func() { called = true })
	m.Trigger(action.P1Button1, event.Press)

	assert.False(t, called)
}

func TestActionHelpers(t *testing.T) {
	assert.True(t, action.P2Button2.IsController())
	assert.True(t, action.ConsoleReset.IsController())
	assert.False(t, action.ConsolePause.IsController())

	assert.Equal(t, 2, action.AudioToggleChannel2.Channel())
	assert.Equal(t, 3, action.AudioSoloChannel3.Channel())
	assert.Equal(t, 0, action.EmulatorQuit.Channel())
}

func TestDefaultKeyMap(t *testing.T) {
	act, ok := GetDefaultMapping("Enter")
	assert.True(t, ok)
	assert.Equal(t, action.ConsolePause, act)

	_, ok = GetDefaultMapping("NotAKey")
	assert.False(t, ok)
}
