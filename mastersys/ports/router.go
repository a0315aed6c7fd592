package ports

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-mastersys/mastersys/addr"
)

// VDP is the video chip side of the port map.
type VDP interface {
	ReadData() uint8
	ReadControl() uint8
	WriteData(value uint8)
	WriteControl(value uint8)
	VCounter() uint8
}

// PSG is the sound chip side of the port map, write only.
type PSG interface {
	Write(value uint8)
}

// Joypad provides the two controller ports and receives nationalisation writes.
type Joypad interface {
	PortA() uint8
	PortB() uint8
	WriteNationalisation(value uint8)
}

// Router decodes Z80 IN/OUT instructions to the chips behind them.
// Only the low 8 bits of the port address take part in decoding.
type Router struct {
	vdp    VDP
	psg    PSG
	joypad Joypad
}

// New creates a router over the given devices.
func New(vdp VDP, psg PSG, joypad Joypad) *Router {
	return &Router{
		vdp:    vdp,
		psg:    psg,
		joypad: joypad,
	}
}

// Read handles an IN instruction.
func (r *Router) Read(port uint16) uint8 {
	switch uint8(port) {
	case addr.PortVCounter, addr.PortHCounter:
		// the H counter is not emulated, both ports return the V counter
		return r.vdp.VCounter()
	case addr.PortVDPData:
		return r.vdp.ReadData()
	case addr.PortVDPControl, addr.PortVDPControlMirror:
		return r.vdp.ReadControl()
	case addr.PortJoypadA, addr.PortJoypadAMirror:
		return r.joypad.PortA()
	case addr.PortJoypadB, addr.PortJoypadBMirror:
		return r.joypad.PortB()
	case addr.PortUnknownDE, addr.PortUnknownDF:
		return 0xFF
	default:
		slog.Debug("Read from unmapped port", "port", fmt.Sprintf("0x%02X", uint8(port)))
		return 0xFF
	}
}

// Write handles an OUT instruction.
func (r *Router) Write(port uint16, value uint8) {
	switch uint8(port) {
	case addr.PortRegion:
		r.joypad.WriteNationalisation(value)
	case addr.PortVCounter, addr.PortPSG:
		r.psg.Write(value)
	case addr.PortVDPData:
		r.vdp.WriteData(value)
	case addr.PortVDPControl, addr.PortVDPControlMirror:
		r.vdp.WriteControl(value)
	case addr.PortUnknownDE, addr.PortUnknownDF:
	default:
		slog.Debug("Write to unmapped port",
			"port", fmt.Sprintf("0x%02X", uint8(port)),
			"value", fmt.Sprintf("0x%02X", value))
	}
}
