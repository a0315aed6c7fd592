package input

import (
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
	"github.com/valerio/go-mastersys/mastersys/memory"
)

var joypadKeys = map[action.Action]memory.JoypadKey{
	action.P1Up:         memory.Player1Up,
	action.P1Down:       memory.Player1Down,
	action.P1Left:       memory.Player1Left,
	action.P1Right:      memory.Player1Right,
	action.P1Button1:    memory.Player1A,
	action.P1Button2:    memory.Player1B,
	action.P2Up:         memory.Player2Up,
	action.P2Down:       memory.Player2Down,
	action.P2Left:       memory.Player2Left,
	action.P2Right:      memory.Player2Right,
	action.P2Button1:    memory.Player2A,
	action.P2Button2:    memory.Player2B,
	action.ConsoleReset: memory.ResetButton,
}

// JoypadKey returns the joypad bit driven by act.
func JoypadKey(act action.Action) (memory.JoypadKey, bool) {
	key, ok := joypadKeys[act]
	return key, ok
}

// Manager routes actions: controller buttons go to the joypad, everything else to registered callbacks.
type Manager struct {
	handlers map[action.Action]map[event.Type][]func()
	filter   *Handler
	joypad   *memory.Joypad
}

func NewManager(j *memory.Joypad) *Manager {
	return &Manager{
		handlers: make(map[action.Action]map[event.Type][]func()),
		filter:   NewHandler(),
		joypad:   j,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}

	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	if !m.filter.ProcessEvent(Event{Action: act, Type: evt}) {
		return
	}

	if key, ok := JoypadKey(act); ok && m.joypad != nil {
		switch evt {
		case event.Press:
			m.joypad.Press(key)
		case event.Release:
			m.joypad.Release(key)
		}
		return
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

// Dispatch triggers every event in order.
func (m *Manager) Dispatch(events []Event) {
	for _, evt := range events {
		m.Trigger(evt.Action, evt.Type)
	}
}
