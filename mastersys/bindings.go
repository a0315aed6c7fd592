package mastersys

import (
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/input"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/valerio/go-mastersys/mastersys/input/event"
)

// BindActions registers callbacks on m that turn emulator actions into driver commands.
// Memory dumps go to dumpDir. Must be called before Run.
func (d *Driver) BindActions(m *input.Manager, dumpDir string) {
	send := func(cmd Command) func() {
		return func() {
			if err := d.Send(cmd); err != nil {
				slog.Warn("Dropped command", "command", cmd.Type, "error", err)
			}
		}
	}

	m.On(action.EmulatorPauseToggle, event.Press, send(Command{Type: CmdTogglePause}))
	m.On(action.EmulatorStepFrame, event.Press, send(Command{Type: CmdStepFrame}))
	m.On(action.EmulatorReset, event.Press, send(Command{Type: CmdReset}))
	m.On(action.EmulatorDumpMemory, event.Press, send(Command{Type: CmdDumpMemory, Path: dumpDir}))
	m.On(action.EmulatorDebugToggle, event.Press, send(Command{Type: CmdToggleDebug}))
	m.On(action.ConsolePause, event.Press, send(Command{Type: CmdPressPause}))

	for _, act := range []action.Action{action.AudioToggleChannel1, action.AudioToggleChannel2, action.AudioToggleChannel3} {
		m.On(act, event.Press, send(Command{Type: CmdToggleChannel, Value: act.Channel()}))
	}
	for _, act := range []action.Action{action.AudioSoloChannel1, action.AudioSoloChannel2, action.AudioSoloChannel3} {
		m.On(act, event.Press, send(Command{Type: CmdSoloChannel, Value: act.Channel()}))
	}
	m.On(action.AudioUnmuteAll, event.Press, send(Command{Type: CmdUnmuteAll}))
	m.On(action.AudioToggleSound, event.Press, send(Command{Type: CmdToggleSound}))

	frameskip := d.console.Frameskip()
	m.On(action.EmulatorFrameskipCycle, event.Press, func() {
		frameskip = (frameskip + 1) % maxFrameskip
		send(Command{Type: CmdSetFrameskip, Value: frameskip})()
	})
}
