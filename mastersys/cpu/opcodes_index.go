package cpu

import (
	"fmt"

	"github.com/valerio/go-mastersys/mastersys/bit"
)

// indexOpcode is an instruction shared by the DD (IX) and FD (IY) prefixes.
// idx points at the index register selected by the prefix.
type indexOpcode func(c *CPU, idx *uint16) int

// indexedBitOpcode is a DDCB/FDCB instruction, operating on an already computed (IX+d)/(IY+d) address.
type indexedBitOpcode func(c *CPU, address uint16) int

var (
	opcodesDD   [256]Opcode
	opcodesFD   [256]Opcode
	opcodesDDCB [256]indexedBitOpcode
	opcodesFDCB [256]indexedBitOpcode
)

func init() {
	for i, fn := range indexOpcodes {
		if fn == nil {
			continue
		}

		fn := fn
		opcodesDD[i] = func(c *CPU) int { return fn(c, &c.ix) }
		opcodesFD[i] = func(c *CPU) int { return fn(c, &c.iy) }
	}

	for i := 0; i < 256; i++ {
		opcodesDDCB[i] = newIndexedBitOpcode(uint8(i))
		opcodesFDCB[i] = opcodesDDCB[i]
	}
}

// indexPrefix dispatches the instruction following a DD or FD prefix.
// Undefined combinations behave as if the prefix was a 4 cycle NOP: the following byte executes on its own.
func (c *CPU) indexPrefix(prefix uint8, idx uint16, table *[256]Opcode, cbTable *[256]indexedBitOpcode) int {
	opcode := c.fetchOpcode()

	if opcode == 0xCB {
		address := c.indexed(idx)
		cbOpcode := c.readImmediate()
		c.currentOpcode = bit.Combine(prefix, cbOpcode)
		return cbTable[cbOpcode](c, address)
	}

	c.currentOpcode = bit.Combine(prefix, opcode)
	if fn := table[opcode]; fn != nil {
		return fn(c)
	}

	c.unknownOpcode(fmt.Sprintf("%02X", prefix), opcode)
	// the byte is fetched again as an opcode of its own, which refreshes R for it
	c.pc--
	c.decrementR()
	return 4
}

// newIndexedBitOpcode builds the DDCB/FDCB instruction for the given opcode byte.
// Apart from BIT, the result is written back to memory and, for the undocumented forms, copied into a register.
func newIndexedBitOpcode(opcode uint8) indexedBitOpcode {
	group, index, reg := opcode>>6, (opcode>>3)&7, opcode&7

	if group == 1 {
		return func(c *CPU, address uint16) int {
			c.bitTest(index, c.read(address), bit.High(address))
			return 20
		}
	}

	var apply func(c *CPU, value *uint8)
	switch group {
	case 0:
		apply = shiftOps[index]
	case 2:
		apply = func(_ *CPU, value *uint8) { *value = bit.Reset(index, *value) }
	case 3:
		apply = func(_ *CPU, value *uint8) { *value = bit.Set(index, *value) }
	}

	return func(c *CPU, address uint16) int {
		value := c.read(address)
		apply(c, &value)
		c.write(address, value)
		if r := c.register(reg); r != nil {
			*r = value
		}
		return 23
	}
}

var indexOpcodes = [256]indexOpcode{
	0x09: index0x09,
	0x19: index0x19,
	0x21: index0x21,
	0x22: index0x22,
	0x23: index0x23,
	0x24: index0x24,
	0x25: index0x25,
	0x26: index0x26,
	0x29: index0x29,
	0x2A: index0x2A,
	0x2B: index0x2B,
	0x2C: index0x2C,
	0x2D: index0x2D,
	0x2E: index0x2E,
	0x34: index0x34,
	0x35: index0x35,
	0x36: index0x36,
	0x39: index0x39,
	0x44: index0x44,
	0x45: index0x45,
	0x46: index0x46,
	0x4C: index0x4C,
	0x4D: index0x4D,
	0x4E: index0x4E,
	0x54: index0x54,
	0x55: index0x55,
	0x56: index0x56,
	0x5C: index0x5C,
	0x5D: index0x5D,
	0x5E: index0x5E,
	0x60: index0x60,
	0x61: index0x61,
	0x62: index0x62,
	0x63: index0x63,
	0x64: index0x64,
	0x65: index0x65,
	0x66: index0x66,
	0x67: index0x67,
	0x68: index0x68,
	0x69: index0x69,
	0x6A: index0x6A,
	0x6B: index0x6B,
	0x6C: index0x6C,
	0x6D: index0x6D,
	0x6E: index0x6E,
	0x6F: index0x6F,
	0x70: index0x70,
	0x71: index0x71,
	0x72: index0x72,
	0x73: index0x73,
	0x74: index0x74,
	0x75: index0x75,
	0x77: index0x77,
	0x7C: index0x7C,
	0x7D: index0x7D,
	0x7E: index0x7E,
	0x84: index0x84,
	0x85: index0x85,
	0x86: index0x86,
	0x8C: index0x8C,
	0x8D: index0x8D,
	0x8E: index0x8E,
	0x94: index0x94,
	0x95: index0x95,
	0x96: index0x96,
	0x9C: index0x9C,
	0x9D: index0x9D,
	0x9E: index0x9E,
	0xA4: index0xA4,
	0xA5: index0xA5,
	0xA6: index0xA6,
	0xAC: index0xAC,
	0xAD: index0xAD,
	0xAE: index0xAE,
	0xB4: index0xB4,
	0xB5: index0xB5,
	0xB6: index0xB6,
	0xBC: index0xBC,
	0xBD: index0xBD,
	0xBE: index0xBE,
	0xE1: index0xE1,
	0xE3: index0xE3,
	0xE5: index0xE5,
	0xE9: index0xE9,
	0xF9: index0xF9,
}

//ADD IX, BC
//#0xDD09, 0xFD09:
func index0x09(c *CPU, idx *uint16) int {
	*idx = c.addWords(*idx, c.getBC())
	return 15
}

//ADD IX, DE
//#0xDD19, 0xFD19:
func index0x19(c *CPU, idx *uint16) int {
	*idx = c.addWords(*idx, c.getDE())
	return 15
}

//LD IX, nn
//#0xDD21, 0xFD21:
func index0x21(c *CPU, idx *uint16) int {
	*idx = c.readImmediateWord()
	return 14
}

//LD (nn), IX
//#0xDD22, 0xFD22:
func index0x22(c *CPU, idx *uint16) int {
	c.writeWord(c.readImmediateWord(), *idx)
	return 20
}

//INC IX
//#0xDD23, 0xFD23:
func index0x23(c *CPU, idx *uint16) int {
	*idx++
	return 10
}

//INC IXH
//#0xDD24, 0xFD24:
func index0x24(c *CPU, idx *uint16) int {
	value := bit.High(*idx)
	c.inc(&value)
	*idx = bit.SetHigh(*idx, value)
	return 8
}

//DEC IXH
//#0xDD25, 0xFD25:
func index0x25(c *CPU, idx *uint16) int {
	value := bit.High(*idx)
	c.dec(&value)
	*idx = bit.SetHigh(*idx, value)
	return 8
}

//LD IXH, n
//#0xDD26, 0xFD26:
func index0x26(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.readImmediate())
	return 11
}

//ADD IX, IX
//#0xDD29, 0xFD29:
func index0x29(c *CPU, idx *uint16) int {
	*idx = c.addWords(*idx, *idx)
	return 15
}

//LD IX, (nn)
//#0xDD2A, 0xFD2A:
func index0x2A(c *CPU, idx *uint16) int {
	*idx = c.readWord(c.readImmediateWord())
	return 20
}

//DEC IX
//#0xDD2B, 0xFD2B:
func index0x2B(c *CPU, idx *uint16) int {
	*idx--
	return 10
}

//INC IXL
//#0xDD2C, 0xFD2C:
func index0x2C(c *CPU, idx *uint16) int {
	value := bit.Low(*idx)
	c.inc(&value)
	*idx = bit.SetLow(*idx, value)
	return 8
}

//DEC IXL
//#0xDD2D, 0xFD2D:
func index0x2D(c *CPU, idx *uint16) int {
	value := bit.Low(*idx)
	c.dec(&value)
	*idx = bit.SetLow(*idx, value)
	return 8
}

//LD IXL, n
//#0xDD2E, 0xFD2E:
func index0x2E(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.readImmediate())
	return 11
}

//INC (IX+d)
//#0xDD34, 0xFD34:
func index0x34(c *CPU, idx *uint16) int {
	address := c.indexed(*idx)
	value := c.read(address)
	c.inc(&value)
	c.write(address, value)
	return 23
}

//DEC (IX+d)
//#0xDD35, 0xFD35:
func index0x35(c *CPU, idx *uint16) int {
	address := c.indexed(*idx)
	value := c.read(address)
	c.dec(&value)
	c.write(address, value)
	return 23
}

//LD (IX+d), n
//#0xDD36, 0xFD36:
func index0x36(c *CPU, idx *uint16) int {
	address := c.indexed(*idx)
	c.write(address, c.readImmediate())
	return 19
}

//ADD IX, SP
//#0xDD39, 0xFD39:
func index0x39(c *CPU, idx *uint16) int {
	*idx = c.addWords(*idx, c.sp)
	return 15
}

//LD B, IXH
//#0xDD44, 0xFD44:
func index0x44(c *CPU, idx *uint16) int {
	c.b = bit.High(*idx)
	return 8
}

//LD B, IXL
//#0xDD45, 0xFD45:
func index0x45(c *CPU, idx *uint16) int {
	c.b = bit.Low(*idx)
	return 8
}

//LD B, (IX+d)
//#0xDD46, 0xFD46:
func index0x46(c *CPU, idx *uint16) int {
	c.b = c.read(c.indexed(*idx))
	return 19
}

//LD C, IXH
//#0xDD4C, 0xFD4C:
func index0x4C(c *CPU, idx *uint16) int {
	c.c = bit.High(*idx)
	return 8
}

//LD C, IXL
//#0xDD4D, 0xFD4D:
func index0x4D(c *CPU, idx *uint16) int {
	c.c = bit.Low(*idx)
	return 8
}

//LD C, (IX+d)
//#0xDD4E, 0xFD4E:
func index0x4E(c *CPU, idx *uint16) int {
	c.c = c.read(c.indexed(*idx))
	return 19
}

//LD D, IXH
//#0xDD54, 0xFD54:
func index0x54(c *CPU, idx *uint16) int {
	c.d = bit.High(*idx)
	return 8
}

//LD D, IXL
//#0xDD55, 0xFD55:
func index0x55(c *CPU, idx *uint16) int {
	c.d = bit.Low(*idx)
	return 8
}

//LD D, (IX+d)
//#0xDD56, 0xFD56:
func index0x56(c *CPU, idx *uint16) int {
	c.d = c.read(c.indexed(*idx))
	return 19
}

//LD E, IXH
//#0xDD5C, 0xFD5C:
func index0x5C(c *CPU, idx *uint16) int {
	c.e = bit.High(*idx)
	return 8
}

//LD E, IXL
//#0xDD5D, 0xFD5D:
func index0x5D(c *CPU, idx *uint16) int {
	c.e = bit.Low(*idx)
	return 8
}

//LD E, (IX+d)
//#0xDD5E, 0xFD5E:
func index0x5E(c *CPU, idx *uint16) int {
	c.e = c.read(c.indexed(*idx))
	return 19
}

//LD IXH, B
//#0xDD60, 0xFD60:
func index0x60(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.b)
	return 8
}

//LD IXH, C
//#0xDD61, 0xFD61:
func index0x61(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.c)
	return 8
}

//LD IXH, D
//#0xDD62, 0xFD62:
func index0x62(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.d)
	return 8
}

//LD IXH, E
//#0xDD63, 0xFD63:
func index0x63(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.e)
	return 8
}

//LD IXH, IXH
//#0xDD64, 0xFD64:
func index0x64(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, bit.High(*idx))
	return 8
}

//LD IXH, IXL
//#0xDD65, 0xFD65:
func index0x65(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, bit.Low(*idx))
	return 8
}

//LD H, (IX+d)
//#0xDD66, 0xFD66:
func index0x66(c *CPU, idx *uint16) int {
	c.h = c.read(c.indexed(*idx))
	return 19
}

//LD IXH, A
//#0xDD67, 0xFD67:
func index0x67(c *CPU, idx *uint16) int {
	*idx = bit.SetHigh(*idx, c.a)
	return 8
}

//LD IXL, B
//#0xDD68, 0xFD68:
func index0x68(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.b)
	return 8
}

//LD IXL, C
//#0xDD69, 0xFD69:
func index0x69(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.c)
	return 8
}

//LD IXL, D
//#0xDD6A, 0xFD6A:
func index0x6A(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.d)
	return 8
}

//LD IXL, E
//#0xDD6B, 0xFD6B:
func index0x6B(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.e)
	return 8
}

//LD IXL, IXH
//#0xDD6C, 0xFD6C:
func index0x6C(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, bit.High(*idx))
	return 8
}

//LD IXL, IXL
//#0xDD6D, 0xFD6D:
func index0x6D(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, bit.Low(*idx))
	return 8
}

//LD L, (IX+d)
//#0xDD6E, 0xFD6E:
func index0x6E(c *CPU, idx *uint16) int {
	c.l = c.read(c.indexed(*idx))
	return 19
}

//LD IXL, A
//#0xDD6F, 0xFD6F:
func index0x6F(c *CPU, idx *uint16) int {
	*idx = bit.SetLow(*idx, c.a)
	return 8
}

//LD (IX+d), B
//#0xDD70, 0xFD70:
func index0x70(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.b)
	return 19
}

//LD (IX+d), C
//#0xDD71, 0xFD71:
func index0x71(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.c)
	return 19
}

//LD (IX+d), D
//#0xDD72, 0xFD72:
func index0x72(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.d)
	return 19
}

//LD (IX+d), E
//#0xDD73, 0xFD73:
func index0x73(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.e)
	return 19
}

//LD (IX+d), H
//#0xDD74, 0xFD74:
func index0x74(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.h)
	return 19
}

//LD (IX+d), L
//#0xDD75, 0xFD75:
func index0x75(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.l)
	return 19
}

//LD (IX+d), A
//#0xDD77, 0xFD77:
func index0x77(c *CPU, idx *uint16) int {
	c.write(c.indexed(*idx), c.a)
	return 19
}

//LD A, IXH
//#0xDD7C, 0xFD7C:
func index0x7C(c *CPU, idx *uint16) int {
	c.a = bit.High(*idx)
	return 8
}

//LD A, IXL
//#0xDD7D, 0xFD7D:
func index0x7D(c *CPU, idx *uint16) int {
	c.a = bit.Low(*idx)
	return 8
}

//LD A, (IX+d)
//#0xDD7E, 0xFD7E:
func index0x7E(c *CPU, idx *uint16) int {
	c.a = c.read(c.indexed(*idx))
	return 19
}

//ADD A, IXH
//#0xDD84, 0xFD84:
func index0x84(c *CPU, idx *uint16) int {
	c.addToA(bit.High(*idx), 0)
	return 8
}

//ADD A, IXL
//#0xDD85, 0xFD85:
func index0x85(c *CPU, idx *uint16) int {
	c.addToA(bit.Low(*idx), 0)
	return 8
}

//ADD A, (IX+d)
//#0xDD86, 0xFD86:
func index0x86(c *CPU, idx *uint16) int {
	c.addToA(c.read(c.indexed(*idx)), 0)
	return 19
}

//ADC A, IXH
//#0xDD8C, 0xFD8C:
func index0x8C(c *CPU, idx *uint16) int {
	c.addToA(bit.High(*idx), c.flagToBit(carryFlag))
	return 8
}

//ADC A, IXL
//#0xDD8D, 0xFD8D:
func index0x8D(c *CPU, idx *uint16) int {
	c.addToA(bit.Low(*idx), c.flagToBit(carryFlag))
	return 8
}

//ADC A, (IX+d)
//#0xDD8E, 0xFD8E:
func index0x8E(c *CPU, idx *uint16) int {
	c.addToA(c.read(c.indexed(*idx)), c.flagToBit(carryFlag))
	return 19
}

//SUB IXH
//#0xDD94, 0xFD94:
func index0x94(c *CPU, idx *uint16) int {
	c.sub(bit.High(*idx))
	return 8
}

//SUB IXL
//#0xDD95, 0xFD95:
func index0x95(c *CPU, idx *uint16) int {
	c.sub(bit.Low(*idx))
	return 8
}

//SUB (IX+d)
//#0xDD96, 0xFD96:
func index0x96(c *CPU, idx *uint16) int {
	c.sub(c.read(c.indexed(*idx)))
	return 19
}

//SBC A, IXH
//#0xDD9C, 0xFD9C:
func index0x9C(c *CPU, idx *uint16) int {
	c.sbc(bit.High(*idx))
	return 8
}

//SBC A, IXL
//#0xDD9D, 0xFD9D:
func index0x9D(c *CPU, idx *uint16) int {
	c.sbc(bit.Low(*idx))
	return 8
}

//SBC A, (IX+d)
//#0xDD9E, 0xFD9E:
func index0x9E(c *CPU, idx *uint16) int {
	c.sbc(c.read(c.indexed(*idx)))
	return 19
}

//AND IXH
//#0xDDA4, 0xFDA4:
func index0xA4(c *CPU, idx *uint16) int {
	c.and(bit.High(*idx))
	return 8
}

//AND IXL
//#0xDDA5, 0xFDA5:
func index0xA5(c *CPU, idx *uint16) int {
	c.and(bit.Low(*idx))
	return 8
}

//AND (IX+d)
//#0xDDA6, 0xFDA6:
func index0xA6(c *CPU, idx *uint16) int {
	c.and(c.read(c.indexed(*idx)))
	return 19
}

//XOR IXH
//#0xDDAC, 0xFDAC:
func index0xAC(c *CPU, idx *uint16) int {
	c.xor(bit.High(*idx))
	return 8
}

//XOR IXL
//#0xDDAD, 0xFDAD:
func index0xAD(c *CPU, idx *uint16) int {
	c.xor(bit.Low(*idx))
	return 8
}

//XOR (IX+d)
//#0xDDAE, 0xFDAE:
func index0xAE(c *CPU, idx *uint16) int {
	c.xor(c.read(c.indexed(*idx)))
	return 19
}

//OR IXH
//#0xDDB4, 0xFDB4:
func index0xB4(c *CPU, idx *uint16) int {
	c.or(bit.High(*idx))
	return 8
}

//OR IXL
//#0xDDB5, 0xFDB5:
func index0xB5(c *CPU, idx *uint16) int {
	c.or(bit.Low(*idx))
	return 8
}

//OR (IX+d)
//#0xDDB6, 0xFDB6:
func index0xB6(c *CPU, idx *uint16) int {
	c.or(c.read(c.indexed(*idx)))
	return 19
}

//CP IXH
//#0xDDBC, 0xFDBC:
func index0xBC(c *CPU, idx *uint16) int {
	c.cp(bit.High(*idx))
	return 8
}

//CP IXL
//#0xDDBD, 0xFDBD:
func index0xBD(c *CPU, idx *uint16) int {
	c.cp(bit.Low(*idx))
	return 8
}

//CP (IX+d)
//#0xDDBE, 0xFDBE:
func index0xBE(c *CPU, idx *uint16) int {
	c.cp(c.read(c.indexed(*idx)))
	return 19
}

//POP IX
//#0xDDE1, 0xFDE1:
func index0xE1(c *CPU, idx *uint16) int {
	*idx = c.popStack()
	return 14
}

//EX (SP), IX
//#0xDDE3, 0xFDE3:
func index0xE3(c *CPU, idx *uint16) int {
	*idx = c.exStack(*idx)
	return 23
}

//PUSH IX
//#0xDDE5, 0xFDE5:
func index0xE5(c *CPU, idx *uint16) int {
	c.pushStack(*idx)
	return 15
}

//JP (IX)
//#0xDDE9, 0xFDE9:
func index0xE9(c *CPU, idx *uint16) int {
	c.pc = *idx
	return 8
}

//LD SP, IX
//#0xDDF9, 0xFDF9:
func index0xF9(c *CPU, idx *uint16) int {
	c.sp = *idx
	return 10
}
