package input

import "github.com/valerio/go-mastersys/mastersys/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
// Backends can use these mappings as a base and override/extend as needed.
var DefaultKeyMap = map[string]action.Action{
	// Controller 1
	"Up":    action.P1Up,
	"Down":  action.P1Down,
	"Left":  action.P1Left,
	"Right": action.P1Right,
	"z":     action.P1Button1,
	"x":     action.P1Button2,

	// Controller 2
	"i": action.P2Up,
	"k": action.P2Down,
	"j": action.P2Left,
	"l": action.P2Right,
	"n": action.P2Button1,
	"m": action.P2Button2,

	// Console buttons
	"Enter":     action.ConsolePause,
	"Backspace": action.ConsoleReset,

	// Emulator controls
	"Space":  action.EmulatorPauseToggle,
	"p":      action.EmulatorPauseToggle,
	"o":      action.EmulatorStepFrame,
	"r":      action.EmulatorReset,
	"F6":     action.EmulatorFrameskipCycle,
	"F7":     action.EmulatorDumpMemory,
	"F9":     action.EmulatorSnapshot,
	"F10":    action.EmulatorDebugToggle,
	"F12":    action.EmulatorTestPatternCycle,
	"Escape": action.EmulatorQuit,
	"q":      action.EmulatorQuit,

	// Audio controls
	"F1": action.AudioToggleChannel1,
	"F2": action.AudioToggleChannel2,
	"F3": action.AudioToggleChannel3,
	"1":  action.AudioSoloChannel1,
	"2":  action.AudioSoloChannel2,
	"3":  action.AudioSoloChannel3,
	"0":  action.AudioUnmuteAll,
	"F4": action.AudioToggleSound,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
