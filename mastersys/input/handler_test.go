package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestHandler() (*Handler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	h := NewHandler()
	h.now = clock.now
	return h, clock
}

func TestHandler_Debouncing(t *testing.T) {
	tests := []struct {
		name           string
		action         action.Action
		eventType      event.Type
		timeBetween    time.Duration
		expectDebounce bool
	}{
		{
			name:           "UI action rapid press - should debounce",
			action:         action.EmulatorDebugToggle,
			eventType:      event.Press,
			timeBetween:    100 * time.Millisecond,
			expectDebounce: true,
		},
		{
			name:           "UI action slow press - should not debounce",
			action:         action.EmulatorDebugToggle,
			eventType:      event.Press,
			timeBetween:    400 * time.Millisecond,
			expectDebounce: false,
		},
		{
			name:           "controller button rapid press - should not debounce",
			action:         action.P1Button1,
			eventType:      event.Press,
			timeBetween:    10 * time.Millisecond,
			expectDebounce: false,
		},
		{
			name:           "UI action rapid release - should debounce",
			action:         action.EmulatorDebugToggle,
			eventType:      event.Release,
			timeBetween:    10 * time.Millisecond,
			expectDebounce: true,
		},
		{
			name:           "Hold event type - should not debounce",
			action:         action.EmulatorDebugToggle,
			eventType:      event.Hold,
			timeBetween:    10 * time.Millisecond,
			expectDebounce: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, clock := newTestHandler()
			evt := Event{Action: tt.action, Type: tt.eventType}

			assert.True(t, handler.ProcessEvent(evt), "First event should always pass")

			clock.advance(tt.timeBetween)
			result := handler.ProcessEvent(evt)

			if tt.expectDebounce {
				assert.False(t, result, "Second event should be debounced")
			} else {
				assert.True(t, result, "Second event should not be debounced")
			}
		})
	}
}

func TestHandler_MultipleActions(t *testing.T) {
	handler, _ := newTestHandler()

	evt1 := Event{Action: action.EmulatorDebugToggle, Type: event.Press}
	evt2 := Event{Action: action.EmulatorSnapshot, Type: event.Press}

	assert.True(t, handler.ProcessEvent(evt1), "First debug toggle should pass")
	assert.True(t, handler.ProcessEvent(evt2), "First snapshot should pass")

	assert.False(t, handler.ProcessEvent(evt1), "Rapid debug toggle should be debounced")
	assert.False(t, handler.ProcessEvent(evt2), "Rapid snapshot should be debounced")
}

func TestHandler_PressAndReleaseTrackedSeparately(t *testing.T) {
	handler, _ := newTestHandler()

	assert.True(t, handler.ProcessEvent(Event{Action: action.EmulatorQuit, Type: event.Press}))
	assert.True(t, handler.ProcessEvent(Event{Action: action.EmulatorQuit, Type: event.Release}))
}
