package cpu

import "github.com/valerio/go-mastersys/mastersys/bit"

// Precomputed flag lookups, indexed by an 8 bit result.
var (
	// sz53Table holds S, Z and the undocumented Y/X copies of a result.
	sz53Table [256]uint8
	// sz53pTable is sz53Table plus the even parity bit, used by logic and rotate ops.
	sz53pTable [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		flags := v & uint8(signFlag|xyFlags)
		if v == 0 {
			flags |= uint8(zeroFlag)
		}
		sz53Table[i] = flags

		if bit.ParityEven(v) {
			flags |= uint8(parityFlag)
		}
		sz53pTable[i] = flags
	}
}

func boolToFlag(condition bool, flag Flag) uint8 {
	if condition {
		return uint8(flag)
	}
	return 0
}
