// Package disasm decodes Z80 machine code into mnemonics for the debug views.
package disasm

import "fmt"

var (
	registers  = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}
	pairs      = [4]string{"BC", "DE", "HL", "SP"}
	stackPairs = [4]string{"BC", "DE", "HL", "AF"}
	conditions = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}
	aluOps     = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}
	shiftOps   = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SLL", "SRL"}
	accOps     = [8]string{"RLCA", "RRCA", "RLA", "RRA", "DAA", "CPL", "SCF", "CCF"}
	modes      = [8]string{"0", "0", "1", "2", "0", "0", "1", "2"}
	blockOps   = [4][4]string{
		{"LDI", "CPI", "INI", "OUTI"},
		{"LDD", "CPD", "IND", "OUTD"},
		{"LDIR", "CPIR", "INIR", "OTIR"},
		{"LDDR", "CPDR", "INDR", "OTDR"},
	}
)

// Reader gives the disassembler access to memory.
type Reader interface {
	ReadByte(address uint16) uint8
}

// Line is a single decoded instruction.
type Line struct {
	Address     uint16
	Instruction string
	Length      int
}

// DisassembleAt decodes the instruction at pc.
func DisassembleAt(pc uint16, mem Reader) Line {
	d := decoder{
		pc:   pc,
		read: func(offset int) uint8 { return mem.ReadByte(pc + uint16(offset)) },
	}
	text := d.decode()

	return Line{Address: pc, Instruction: text, Length: d.length}
}

// DisassembleBytes decodes the instruction starting at data[offset]. base is the address of data[0],
// needed to resolve relative jumps. Bytes past the end of data read as zero.
func DisassembleBytes(data []byte, offset int, base uint16) (string, int) {
	d := decoder{
		pc: base + uint16(offset),
		read: func(i int) uint8 {
			if offset+i < len(data) {
				return data[offset+i]
			}
			return 0
		},
	}
	text := d.decode()

	return text, d.length
}

type decoder struct {
	pc     uint16
	read   func(offset int) uint8
	length int

	// index is "IX" or "IY" while decoding a DD/FD prefixed instruction
	index string
}

func (d *decoder) next() uint8 {
	v := d.read(d.length)
	d.length++
	return v
}

func (d *decoder) imm8() string {
	return fmt.Sprintf("0x%02X", d.next())
}

func (d *decoder) imm16() string {
	low := d.next()
	high := d.next()
	return fmt.Sprintf("0x%04X", uint16(high)<<8|uint16(low))
}

func (d *decoder) relative() string {
	offset := int8(d.next())
	target := d.pc + uint16(d.length) + uint16(int16(offset))
	return fmt.Sprintf("0x%04X", target)
}

func (d *decoder) displacement() string {
	offset := int8(d.next())
	if offset < 0 {
		return fmt.Sprintf("(%s-0x%02X)", d.index, -int(offset))
	}
	return fmt.Sprintf("(%s+0x%02X)", d.index, offset)
}

// reg names register r, with H, L and (HL) replaced by their index forms when prefixed.
func (d *decoder) reg(r uint8) string {
	if d.index == "" {
		return registers[r]
	}
	switch r {
	case 4:
		return d.index + "H"
	case 5:
		return d.index + "L"
	case 6:
		return d.displacement()
	}
	return registers[r]
}

func (d *decoder) hl() string {
	if d.index != "" {
		return d.index
	}
	return "HL"
}

func (d *decoder) pair(p uint8) string {
	if p == 2 {
		return d.hl()
	}
	return pairs[p]
}

func (d *decoder) stackPair(p uint8) string {
	if p == 2 {
		return d.hl()
	}
	return stackPairs[p]
}

func fields(op uint8) (x, y, z, p, q uint8) {
	x = op >> 6
	y = (op >> 3) & 7
	z = op & 7
	p = y >> 1
	q = y & 1
	return
}

func (d *decoder) decode() string {
	op := d.next()

	switch op {
	case 0xCB:
		return d.decodeCB()
	case 0xED:
		return d.decodeED()
	case 0xDD, 0xFD:
		following := d.read(d.length)
		if following == 0xDD || following == 0xED || following == 0xFD {
			// the prefix has no effect on these, it runs as a four cycle no-op
			return fmt.Sprintf("DB 0x%02X", op)
		}

		d.index = "IX"
		if op == 0xFD {
			d.index = "IY"
		}
		if following == 0xCB {
			d.next()
			return d.decodeIndexedCB()
		}
		return d.decodePrimary(d.next())
	}

	return d.decodePrimary(op)
}

func (d *decoder) decodePrimary(op uint8) string {
	x, y, z, p, q := fields(op)

	switch x {
	case 0:
		return d.decodeBlock0(y, z, p, q)
	case 1:
		if y == 6 && z == 6 {
			return "HALT"
		}
		// with an index prefix only the memory operand changes when (HL) is involved
		if d.index != "" && (y == 6 || z == 6) {
			if y == 6 {
				return "LD " + d.displacement() + "," + registers[z]
			}
			return "LD " + registers[y] + "," + d.displacement()
		}
		return "LD " + d.reg(y) + "," + d.reg(z)
	case 2:
		return aluOps[y] + d.reg(z)
	}

	return d.decodeBlock3(y, z, p, q)
}

func (d *decoder) decodeBlock0(y, z, p, q uint8) string {
	switch z {
	case 0:
		switch y {
		case 0:
			return "NOP"
		case 1:
			return "EX AF,AF'"
		case 2:
			return "DJNZ " + d.relative()
		case 3:
			return "JR " + d.relative()
		}
		return "JR " + conditions[y-4] + "," + d.relative()
	case 1:
		if q == 0 {
			return "LD " + d.pair(p) + "," + d.imm16()
		}
		return "ADD " + d.hl() + "," + d.pair(p)
	case 2:
		switch y {
		case 0:
			return "LD (BC),A"
		case 1:
			return "LD A,(BC)"
		case 2:
			return "LD (DE),A"
		case 3:
			return "LD A,(DE)"
		case 4:
			return "LD (" + d.imm16() + ")," + d.hl()
		case 5:
			return "LD " + d.hl() + ",(" + d.imm16() + ")"
		case 6:
			return "LD (" + d.imm16() + "),A"
		}
		return "LD A,(" + d.imm16() + ")"
	case 3:
		if q == 0 {
			return "INC " + d.pair(p)
		}
		return "DEC " + d.pair(p)
	case 4:
		return "INC " + d.reg(y)
	case 5:
		return "DEC " + d.reg(y)
	case 6:
		// the displacement comes before the immediate
		target := d.reg(y)
		return "LD " + target + "," + d.imm8()
	}

	return accOps[y]
}

func (d *decoder) decodeBlock3(y, z, p, q uint8) string {
	switch z {
	case 0:
		return "RET " + conditions[y]
	case 1:
		if q == 0 {
			return "POP " + d.stackPair(p)
		}
		switch p {
		case 0:
			return "RET"
		case 1:
			return "EXX"
		case 2:
			return "JP (" + d.hl() + ")"
		}
		return "LD SP," + d.hl()
	case 2:
		return "JP " + conditions[y] + "," + d.imm16()
	case 3:
		switch y {
		case 0:
			return "JP " + d.imm16()
		case 2:
			return "OUT (" + d.imm8() + "),A"
		case 3:
			return "IN A,(" + d.imm8() + ")"
		case 4:
			return "EX (SP)," + d.hl()
		case 5:
			return "EX DE,HL"
		case 6:
			return "DI"
		case 7:
			return "EI"
		}
	case 4:
		return "CALL " + conditions[y] + "," + d.imm16()
	case 5:
		if q == 0 {
			return "PUSH " + d.stackPair(p)
		}
		return "CALL " + d.imm16()
	case 6:
		return aluOps[y] + d.imm8()
	case 7:
		return fmt.Sprintf("RST 0x%02X", y*8)
	}

	// prefixes are consumed by decode, so this is unreachable
	return "???"
}

func (d *decoder) decodeCB() string {
	x, y, z, _, _ := fields(d.next())

	switch x {
	case 0:
		return shiftOps[y] + " " + registers[z]
	case 1:
		return fmt.Sprintf("BIT %d,%s", y, registers[z])
	case 2:
		return fmt.Sprintf("RES %d,%s", y, registers[z])
	}
	return fmt.Sprintf("SET %d,%s", y, registers[z])
}

// decodeIndexedCB handles DDCB/FDCB, where the displacement sits before the opcode.
func (d *decoder) decodeIndexedCB() string {
	operand := d.displacement()
	x, y, z, _, _ := fields(d.next())

	// the undocumented forms also copy the result to a register
	copyTo := ""
	if z != 6 {
		copyTo = "," + registers[z]
	}

	switch x {
	case 0:
		return shiftOps[y] + " " + operand + copyTo
	case 1:
		return fmt.Sprintf("BIT %d,%s", y, operand)
	case 2:
		return fmt.Sprintf("RES %d,%s%s", y, operand, copyTo)
	}
	return fmt.Sprintf("SET %d,%s%s", y, operand, copyTo)
}

func (d *decoder) decodeED() string {
	op := d.next()
	x, y, z, p, q := fields(op)

	if x == 2 && z <= 3 && y >= 4 {
		return blockOps[y-4][z]
	}
	if x != 1 {
		return fmt.Sprintf("DB 0xED,0x%02X", op)
	}

	switch z {
	case 0:
		if y == 6 {
			return "IN (C)"
		}
		return "IN " + registers[y] + ",(C)"
	case 1:
		if y == 6 {
			return "OUT (C),0"
		}
		return "OUT (C)," + registers[y]
	case 2:
		if q == 0 {
			return "SBC HL," + pairs[p]
		}
		return "ADC HL," + pairs[p]
	case 3:
		if q == 0 {
			return "LD (" + d.imm16() + ")," + pairs[p]
		}
		return "LD " + pairs[p] + ",(" + d.imm16() + ")"
	case 4:
		return "NEG"
	case 5:
		if y == 1 {
			return "RETI"
		}
		return "RETN"
	case 6:
		return "IM " + modes[y]
	}

	return [8]string{"LD I,A", "LD R,A", "LD A,I", "LD A,R", "RRD", "RLD", "NOP", "NOP"}[y]
}
