//go:build sdl2

package mastersys

import (
	"testing"

	"github.com/valerio/go-mastersys/mastersys/backend"
	"github.com/valerio/go-mastersys/mastersys/backend/sdl2"
	"github.com/valerio/go-mastersys/mastersys/input/action"
)

func BenchmarkSDL2Backend(b *testing.B) {
	cases := []struct {
		name   string
		frames int
	}{
		{"interrupts_100", 100},
		{"interrupts_1000", 1000},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			emu := newTestConsole(b, frameInterruptProgram, frameInterruptHandler)

			sdlBackend := sdl2.New()
			if err := sdlBackend.Init(backend.BackendConfig{Title: "Benchmark", Scale: 1}); err != nil {
				b.Skipf("SDL2 not usable here: %v", err)
			}
			defer sdlBackend.Cleanup()

			emu.SetFrameLimiter(nil)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				for frameCount := 0; frameCount < tc.frames; frameCount++ {
					emu.RunFrame()

					events, err := sdlBackend.Update(emu.GetCurrentFrame())
					if err != nil {
						b.Fatalf("SDL2 update failed: %v", err)
					}
					for _, evt := range events {
						if evt.Action == action.EmulatorQuit {
							b.Fatalf("Unexpected quit event during benchmark")
						}
					}
				}
			}
		})
	}
}
