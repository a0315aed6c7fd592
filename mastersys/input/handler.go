package input

import (
	"time"

	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
)

// debounceDuration is the minimum time between two debounced events of the same action.
const debounceDuration = 300 * time.Millisecond

// Event is a backend input translated to an action.
type Event struct {
	Action action.Action
	Type   event.Type
}

// Handler filters events, debouncing emulator actions. Controller buttons pass straight through
// since games need every press.
type Handler struct {
	lastActionTime map[action.Action]map[event.Type]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]map[event.Type]time.Time),
		debounceDelay:  debounceDuration,
		now:            time.Now,
	}
}

// ProcessEvent reports whether evt should be handled, false if it was debounced.
func (h *Handler) ProcessEvent(evt Event) bool {
	if evt.Action.IsController() || evt.Type == event.Hold {
		return true
	}

	now := h.now()
	times := h.lastActionTime[evt.Action]
	if times == nil {
		times = make(map[event.Type]time.Time)
		h.lastActionTime[evt.Action] = times
	}

	if last, ok := times[evt.Type]; ok && now.Sub(last) < h.debounceDelay {
		return false
	}
	times[evt.Type] = now

	return true
}
