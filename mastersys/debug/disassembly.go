package debug

import (
	"github.com/valerio/go-mastersys/mastersys/disasm"
)

// lookBehind is how many bytes before PC decoding starts from.
const lookBehind = 24

type DisasmLine struct {
	Address     uint16
	Instruction string
	IsCurrent   bool
}

// SnapshotAround copies size bytes of memory starting before bytes ahead of pc.
// The window is clipped to the address space instead of wrapping.
func SnapshotAround(mem disasm.Reader, pc uint16, before, size int) *MemorySnapshot {
	start := int(pc) - before
	if start < 0 {
		start = 0
	}
	if start+size > 0x10000 {
		size = 0x10000 - start
	}

	snapshot := &MemorySnapshot{
		StartAddr: uint16(start),
		Bytes:     make([]uint8, size),
	}
	for i := range snapshot.Bytes {
		snapshot.Bytes[i] = mem.ReadByte(uint16(start + i))
	}

	return snapshot
}

// CreateDisassembly decodes the snapshot into at most maxLines lines, keeping the line at pc
// roughly in the middle.
func CreateDisassembly(snapshot *MemorySnapshot, pc uint16, maxLines int) []DisasmLine {
	if snapshot == nil || maxLines <= 0 {
		return nil
	}

	data := snapshot.Bytes
	base := snapshot.StartAddr
	end := int(base) + len(data)

	if int(pc) < int(base) || int(pc) >= end {
		lines := make([]DisasmLine, 0, maxLines)
		for i := 0; i < len(data) && len(lines) < maxLines-1; {
			text, length := disasm.DisassembleBytes(data, i, base)
			lines = append(lines, DisasmLine{Address: base + uint16(i), Instruction: text})
			i += length
		}
		return append(lines, DisasmLine{
			Address:     pc,
			Instruction: "[PC outside snapshot range]",
			IsCurrent:   true,
		})
	}

	pcOffset := int(pc - base)
	lines := make([]DisasmLine, 0, maxLines*2)
	pcIndex := -1

	for i := max(pcOffset-lookBehind, 0); i < len(data); {
		text, length := disasm.DisassembleBytes(data, i, base)
		if i < pcOffset && i+length > pcOffset {
			// decoding started mid-instruction, resynchronise on pc
			i = pcOffset
			continue
		}

		address := base + uint16(i)
		lines = append(lines, DisasmLine{Address: address, Instruction: text, IsCurrent: address == pc})
		if address == pc {
			pcIndex = len(lines) - 1
		}

		i += length
		if pcIndex >= 0 && len(lines)-pcIndex > maxLines {
			break
		}
	}

	start := max(pcIndex-maxLines/2, 0)
	stop := min(start+maxLines, len(lines))
	if stop-start < maxLines {
		start = max(stop-maxLines, 0)
	}

	return lines[start:stop]
}
