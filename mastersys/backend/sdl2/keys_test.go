//go:build sdl2

package sdl2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-mastersys/mastersys/input/action"
	"github.com/veandco/go-sdl2/sdl"
)

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		key  sdl.Keycode
		want action.Action
	}{
		{sdl.K_UP, action.P1Up},
		{sdl.K_z, action.P1Button1},
		{sdl.K_n, action.P2Button1},
		{sdl.K_RETURN, action.ConsolePause},
		{sdl.K_F10, action.EmulatorDebugToggle},
		{sdl.K_1, action.AudioSoloChannel1},
		{sdl.K_ESCAPE, action.EmulatorQuit},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keyMapping[tt.key])
		})
	}
}
