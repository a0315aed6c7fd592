package action

// Action represents input actions that can be performed in the emulator
type Action int

const (
	// Controller 1
	P1Up Action = iota
	P1Down
	P1Left
	P1Right
	P1Button1
	P1Button2

	// Controller 2
	P2Up
	P2Down
	P2Left
	P2Right
	P2Button1
	P2Button2

	// Console buttons. Reset is a joypad bit, Pause raises the NMI.
	ConsoleReset
	ConsolePause

	// Emulator features
	EmulatorDebugToggle
	EmulatorSnapshot
	EmulatorPauseToggle
	EmulatorStepFrame
	EmulatorReset
	EmulatorDumpMemory
	EmulatorFrameskipCycle
	EmulatorTestPatternCycle
	EmulatorQuit

	// Audio controls
	AudioToggleChannel1
	AudioToggleChannel2
	AudioToggleChannel3
	AudioSoloChannel1
	AudioSoloChannel2
	AudioSoloChannel3
	AudioUnmuteAll
	AudioToggleSound
)

var names = map[Action]string{
	P1Up:                     "P1Up",
	P1Down:                   "P1Down",
	P1Left:                   "P1Left",
	P1Right:                  "P1Right",
	P1Button1:                "P1Button1",
	P1Button2:                "P1Button2",
	P2Up:                     "P2Up",
	P2Down:                   "P2Down",
	P2Left:                   "P2Left",
	P2Right:                  "P2Right",
	P2Button1:                "P2Button1",
	P2Button2:                "P2Button2",
	ConsoleReset:             "ConsoleReset",
	ConsolePause:             "ConsolePause",
	EmulatorDebugToggle:      "DebugToggle",
	EmulatorSnapshot:         "Snapshot",
	EmulatorPauseToggle:      "PauseToggle",
	EmulatorStepFrame:        "StepFrame",
	EmulatorReset:            "Reset",
	EmulatorDumpMemory:       "DumpMemory",
	EmulatorFrameskipCycle:   "FrameskipCycle",
	EmulatorTestPatternCycle: "TestPatternCycle",
	EmulatorQuit:             "Quit",
	AudioToggleChannel1:      "ToggleChannel1",
	AudioToggleChannel2:      "ToggleChannel2",
	AudioToggleChannel3:      "ToggleChannel3",
	AudioSoloChannel1:        "SoloChannel1",
	AudioSoloChannel2:        "SoloChannel2",
	AudioSoloChannel3:        "SoloChannel3",
	AudioUnmuteAll:           "UnmuteAll",
	AudioToggleSound:         "ToggleSound",
}

func (a Action) String() string {
	if name, ok := names[a]; ok {
		return name
	}
	return "Unknown"
}

// IsController reports whether the action is a button wired to a joypad port.
func (a Action) IsController() bool {
	return a >= P1Up && a <= ConsoleReset
}

// Channel returns the 1-based sound channel an audio action refers to, 0 for any other action.
func (a Action) Channel() int {
	switch {
	case a >= AudioToggleChannel1 && a <= AudioToggleChannel3:
		return int(a-AudioToggleChannel1) + 1
	case a >= AudioSoloChannel1 && a <= AudioSoloChannel3:
		return int(a-AudioSoloChannel1) + 1
	}
	return 0
}
