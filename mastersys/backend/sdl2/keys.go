//go:build sdl2

package sdl2

import (
	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/veandco/go-sdl2/sdl"
)

var sdlKeyNames = map[sdl.Keycode]string{
	sdl.K_UP:        "Up",
	sdl.K_DOWN:      "Down",
	sdl.K_LEFT:      "Left",
	sdl.K_RIGHT:     "Right",
	sdl.K_RETURN:    "Enter",
	sdl.K_BACKSPACE: "Backspace",
	sdl.K_SPACE:     "Space",
	sdl.K_ESCAPE:    "Escape",
	sdl.K_F1:        "F1",
	sdl.K_F2:        "F2",
	sdl.K_F3:        "F3",
	sdl.K_F4:        "F4",
	sdl.K_F6:        "F6",
	sdl.K_F7:        "F7",
	sdl.K_F9:        "F9",
	sdl.K_F10:       "F10",
	sdl.K_F12:       "F12",
}

// buildKeyMapping resolves the shared default key names to SDL keycodes.
// Letter and digit keycodes are their lowercase ASCII values.
func buildKeyMapping() map[sdl.Keycode]action.Action {
	names := make(map[sdl.Keycode]string, len(sdlKeyNames)+36)
	for code, name := range sdlKeyNames {
		names[code] = name
	}
	for r := 'a'; r <= 'z'; r++ {
		names[sdl.Keycode(r)] = string(r)
	}
	for r := '0'; r <= '9'; r++ {
		names[sdl.Keycode(r)] = string(r)
	}

	mapping := make(map[sdl.Keycode]action.Action)
	for code, name := range names {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[code] = act
		}
	}

	return mapping
}

var keyMapping = buildKeyMapping()
