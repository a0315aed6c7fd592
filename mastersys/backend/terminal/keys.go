package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
)

// Key expiry timeout - slightly longer than typical key repeat interval.
// Terminals report no key releases, so a key counts as held while it keeps repeating.
const keyTimeout = 100 * time.Millisecond

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyEscape:     "Escape",
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF12:        "F12",
}

// runeName maps printable keys to the names used in default mappings; most are the rune itself.
func runeName(r rune) string {
	if r == ' ' {
		return "Space"
	}
	return string(r)
}

func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.EmulatorQuit

	return mapping
}

var keyMapping = buildKeyMapping()

// lookupKey returns the action bound to a tcell key event.
func lookupKey(key tcell.Key, r rune) (action.Action, bool) {
	if key == tcell.KeyRune {
		return input.GetDefaultMapping(runeName(r))
	}
	act, ok := keyMapping[key]
	return act, ok
}

// directions groups the pad directions of each controller. A terminal press of one direction
// cancels the others on the same pad.
var directions = [][]action.Action{
	{action.P1Up, action.P1Down, action.P1Left, action.P1Right},
	{action.P2Up, action.P2Down, action.P2Left, action.P2Right},
}

// keyTracker turns repeated terminal key presses into press, hold and release events.
type keyTracker struct {
	lastSeen map[action.Action]time.Time
	active   map[action.Action]bool
}

func newKeyTracker() *keyTracker {
	return &keyTracker{
		lastSeen: make(map[action.Action]time.Time),
		active:   make(map[action.Action]bool),
	}
}

func (k *keyTracker) press(act action.Action, now time.Time) {
	for _, pad := range directions {
		for _, dir := range pad {
			if dir != act {
				continue
			}
			for _, other := range pad {
				delete(k.lastSeen, other)
			}
		}
	}
	k.lastSeen[act] = now
}

// poll returns the events for this frame: Press for keys that just appeared, Hold for keys still
// repeating and Release for keys that expired.
func (k *keyTracker) poll(now time.Time) []backend.InputEvent {
	var events []backend.InputEvent
	current := make(map[action.Action]bool, len(k.lastSeen))

	for act, seen := range k.lastSeen {
		if now.Sub(seen) >= keyTimeout {
			delete(k.lastSeen, act)
			continue
		}

		current[act] = true
		if k.active[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		} else {
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		}
	}

	for act := range k.active {
		if !current[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}

	k.active = current
	return events
}
