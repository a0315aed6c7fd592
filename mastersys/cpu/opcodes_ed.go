package cpu

// inPortC reads port BC for IN r,(C). Flags are set from the value, carry is preserved.
func (c *CPU) inPortC() uint8 {
	value := c.in(c.getBC())
	c.f = (c.f & uint8(carryFlag)) | sz53pTable[value]
	return value
}

// loadSpecialFlags sets flags after LD A,I and LD A,R: PV reflects IFF2.
func (c *CPU) loadSpecialFlags() {
	c.f = (c.f & uint8(carryFlag)) | sz53Table[c.a] | boolToFlag(c.iff2, parityFlag)
}

func (c *CPU) rld() {
	address := c.getHL()
	value := c.read(address)

	c.write(address, (value<<4)|(c.a&0x0F))
	c.a = (c.a & 0xF0) | (value >> 4)
	c.f = (c.f & uint8(carryFlag)) | sz53pTable[c.a]
}

func (c *CPU) rrd() {
	address := c.getHL()
	value := c.read(address)

	c.write(address, (c.a<<4)|(value>>4))
	c.a = (c.a & 0xF0) | (value & 0x0F)
	c.f = (c.f & uint8(carryFlag)) | sz53pTable[c.a]
}

// repeat finishes one iteration of a repeating block instruction.
// While the condition holds PC is moved back onto the instruction so it executes again.
func (c *CPU) repeat(again bool) int {
	if !again {
		return 16
	}

	c.pc -= 2
	return 21
}

// ldi performs one LDI (step 1) or LDD (step -1) transfer.
func (c *CPU) ldi(step int) {
	value := c.read(c.getHL())
	c.write(c.getDE(), value)

	c.setHL(uint16(int(c.getHL()) + step))
	c.setDE(uint16(int(c.getDE()) + step))
	c.setBC(c.getBC() - 1)

	n := value + c.a
	c.f = (c.f & uint8(signFlag|zeroFlag|carryFlag)) |
		boolToFlag(c.getBC() != 0, parityFlag) |
		(n & uint8(xFlag)) |
		((n << 4) & uint8(yFlag))
}

// cpi performs one CPI (step 1) or CPD (step -1) comparison.
func (c *CPU) cpi(step int) {
	value := c.read(c.getHL())
	result := c.a - value
	halfCarry := (c.a^value^result)&0x10 != 0

	c.setHL(uint16(int(c.getHL()) + step))
	c.setBC(c.getBC() - 1)

	n := result
	if halfCarry {
		n--
	}
	c.f = (c.f & uint8(carryFlag)) | uint8(subFlag) |
		(sz53Table[result] & uint8(signFlag|zeroFlag)) |
		boolToFlag(halfCarry, halfCarryFlag) |
		boolToFlag(c.getBC() != 0, parityFlag) |
		(n & uint8(xFlag)) |
		((n << 4) & uint8(yFlag))
}

// blockIOFlags sets the flags shared by INI/IND/OUTI/OUTD once B has been decremented.
// k is the transferred value plus the adjusted C or L register.
func (c *CPU) blockIOFlags(value uint8, k int) {
	c.f = sz53Table[c.b] |
		boolToFlag(value&0x80 != 0, subFlag) |
		boolToFlag(k > 0xFF, halfCarryFlag|carryFlag) |
		(sz53pTable[uint8(k&0x07)^c.b] & uint8(parityFlag))
}

// ini performs one INI (step 1) or IND (step -1) transfer.
func (c *CPU) ini(step int) {
	value := c.in(c.getBC())
	c.write(c.getHL(), value)

	c.setHL(uint16(int(c.getHL()) + step))
	c.b--

	c.blockIOFlags(value, int(value)+int(uint8(int(c.c)+step)))
}

// outi performs one OUTI (step 1) or OUTD (step -1) transfer. B is decremented before the write.
func (c *CPU) outi(step int) {
	value := c.read(c.getHL())
	c.b--
	c.out(c.getBC(), value)

	c.setHL(uint16(int(c.getHL()) + step))

	c.blockIOFlags(value, int(value)+int(c.l))
}

// opcodesED holds the 0xED prefixed instructions. Nil entries are undefined and execute as 8 cycle no-ops.
var opcodesED = [256]Opcode{
	0x40: opcode0xED40,
	0x41: opcode0xED41,
	0x42: opcode0xED42,
	0x43: opcode0xED43,
	0x44: opcode0xED44,
	0x45: opcode0xED45,
	0x46: opcode0xED46,
	0x47: opcode0xED47,
	0x48: opcode0xED48,
	0x49: opcode0xED49,
	0x4A: opcode0xED4A,
	0x4B: opcode0xED4B,
	0x4C: opcode0xED4C,
	0x4D: opcode0xED4D,
	0x4E: opcode0xED4E,
	0x4F: opcode0xED4F,
	0x50: opcode0xED50,
	0x51: opcode0xED51,
	0x52: opcode0xED52,
	0x53: opcode0xED53,
	0x54: opcode0xED54,
	0x55: opcode0xED55,
	0x56: opcode0xED56,
	0x57: opcode0xED57,
	0x58: opcode0xED58,
	0x59: opcode0xED59,
	0x5A: opcode0xED5A,
	0x5B: opcode0xED5B,
	0x5C: opcode0xED5C,
	0x5D: opcode0xED5D,
	0x5E: opcode0xED5E,
	0x5F: opcode0xED5F,
	0x60: opcode0xED60,
	0x61: opcode0xED61,
	0x62: opcode0xED62,
	0x63: opcode0xED63,
	0x64: opcode0xED64,
	0x65: opcode0xED65,
	0x66: opcode0xED66,
	0x67: opcode0xED67,
	0x68: opcode0xED68,
	0x69: opcode0xED69,
	0x6A: opcode0xED6A,
	0x6B: opcode0xED6B,
	0x6C: opcode0xED6C,
	0x6D: opcode0xED6D,
	0x6E: opcode0xED6E,
	0x6F: opcode0xED6F,
	0x70: opcode0xED70,
	0x71: opcode0xED71,
	0x72: opcode0xED72,
	0x73: opcode0xED73,
	0x74: opcode0xED74,
	0x75: opcode0xED75,
	0x76: opcode0xED76,
	0x78: opcode0xED78,
	0x79: opcode0xED79,
	0x7A: opcode0xED7A,
	0x7B: opcode0xED7B,
	0x7C: opcode0xED7C,
	0x7D: opcode0xED7D,
	0x7E: opcode0xED7E,
	0xA0: opcode0xEDA0,
	0xA1: opcode0xEDA1,
	0xA2: opcode0xEDA2,
	0xA3: opcode0xEDA3,
	0xA8: opcode0xEDA8,
	0xA9: opcode0xEDA9,
	0xAA: opcode0xEDAA,
	0xAB: opcode0xEDAB,
	0xB0: opcode0xEDB0,
	0xB1: opcode0xEDB1,
	0xB2: opcode0xEDB2,
	0xB3: opcode0xEDB3,
	0xB8: opcode0xEDB8,
	0xB9: opcode0xEDB9,
	0xBA: opcode0xEDBA,
	0xBB: opcode0xEDBB,
}

//IN B, (C)
//#0xED40:
func opcode0xED40(c *CPU) int {
	c.b = c.inPortC()
	return 12
}

//OUT (C), B
//#0xED41:
func opcode0xED41(c *CPU) int {
	c.out(c.getBC(), c.b)
	return 12
}

//SBC HL, BC
//#0xED42:
func opcode0xED42(c *CPU) int {
	c.sbcHL(c.getBC())
	return 15
}

//LD (nn), BC
//#0xED43:
func opcode0xED43(c *CPU) int {
	c.writeWord(c.readImmediateWord(), c.getBC())
	return 20
}

//NEG
//#0xED44:
func opcode0xED44(c *CPU) int {
	c.neg()
	return 8
}

//RETN
//#0xED45:
func opcode0xED45(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 0
//#0xED46:
func opcode0xED46(c *CPU) int {
	c.im = 0
	return 8
}

//LD I, A
//#0xED47:
func opcode0xED47(c *CPU) int {
	c.i = c.a
	return 9
}

//IN C, (C)
//#0xED48:
func opcode0xED48(c *CPU) int {
	c.c = c.inPortC()
	return 12
}

//OUT (C), C
//#0xED49:
func opcode0xED49(c *CPU) int {
	c.out(c.getBC(), c.c)
	return 12
}

//ADC HL, BC
//#0xED4A:
func opcode0xED4A(c *CPU) int {
	c.adcHL(c.getBC())
	return 15
}

//LD BC, (nn)
//#0xED4B:
func opcode0xED4B(c *CPU) int {
	c.setBC(c.readWord(c.readImmediateWord()))
	return 20
}

//NEG (undocumented)
//#0xED4C:
func opcode0xED4C(c *CPU) int {
	c.neg()
	return 8
}

//RETI
//#0xED4D:
func opcode0xED4D(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 0 (undocumented)
//#0xED4E:
func opcode0xED4E(c *CPU) int {
	c.im = 0
	return 8
}

//LD R, A
//#0xED4F:
func opcode0xED4F(c *CPU) int {
	c.r = c.a
	return 9
}

//IN D, (C)
//#0xED50:
func opcode0xED50(c *CPU) int {
	c.d = c.inPortC()
	return 12
}

//OUT (C), D
//#0xED51:
func opcode0xED51(c *CPU) int {
	c.out(c.getBC(), c.d)
	return 12
}

//SBC HL, DE
//#0xED52:
func opcode0xED52(c *CPU) int {
	c.sbcHL(c.getDE())
	return 15
}

//LD (nn), DE
//#0xED53:
func opcode0xED53(c *CPU) int {
	c.writeWord(c.readImmediateWord(), c.getDE())
	return 20
}

//NEG (undocumented)
//#0xED54:
func opcode0xED54(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED55:
func opcode0xED55(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 1
//#0xED56:
func opcode0xED56(c *CPU) int {
	c.im = 1
	return 8
}

//LD A, I
//#0xED57:
func opcode0xED57(c *CPU) int {
	c.a = c.i
	c.loadSpecialFlags()
	return 9
}

//IN E, (C)
//#0xED58:
func opcode0xED58(c *CPU) int {
	c.e = c.inPortC()
	return 12
}

//OUT (C), E
//#0xED59:
func opcode0xED59(c *CPU) int {
	c.out(c.getBC(), c.e)
	return 12
}

//ADC HL, DE
//#0xED5A:
func opcode0xED5A(c *CPU) int {
	c.adcHL(c.getDE())
	return 15
}

//LD DE, (nn)
//#0xED5B:
func opcode0xED5B(c *CPU) int {
	c.setDE(c.readWord(c.readImmediateWord()))
	return 20
}

//NEG (undocumented)
//#0xED5C:
func opcode0xED5C(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED5D:
func opcode0xED5D(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 2
//#0xED5E:
func opcode0xED5E(c *CPU) int {
	c.im = 2
	return 8
}

//LD A, R
//#0xED5F:
func opcode0xED5F(c *CPU) int {
	c.a = c.r
	c.loadSpecialFlags()
	return 9
}

//IN H, (C)
//#0xED60:
func opcode0xED60(c *CPU) int {
	c.h = c.inPortC()
	return 12
}

//OUT (C), H
//#0xED61:
func opcode0xED61(c *CPU) int {
	c.out(c.getBC(), c.h)
	return 12
}

//SBC HL, HL
//#0xED62:
func opcode0xED62(c *CPU) int {
	c.sbcHL(c.getHL())
	return 15
}

//LD (nn), HL
//#0xED63:
func opcode0xED63(c *CPU) int {
	c.writeWord(c.readImmediateWord(), c.getHL())
	return 20
}

//NEG (undocumented)
//#0xED64:
func opcode0xED64(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED65:
func opcode0xED65(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 0 (undocumented)
//#0xED66:
func opcode0xED66(c *CPU) int {
	c.im = 0
	return 8
}

//RRD
//#0xED67:
func opcode0xED67(c *CPU) int {
	c.rrd()
	return 18
}

//IN L, (C)
//#0xED68:
func opcode0xED68(c *CPU) int {
	c.l = c.inPortC()
	return 12
}

//OUT (C), L
//#0xED69:
func opcode0xED69(c *CPU) int {
	c.out(c.getBC(), c.l)
	return 12
}

//ADC HL, HL
//#0xED6A:
func opcode0xED6A(c *CPU) int {
	c.adcHL(c.getHL())
	return 15
}

//LD HL, (nn)
//#0xED6B:
func opcode0xED6B(c *CPU) int {
	c.setHL(c.readWord(c.readImmediateWord()))
	return 20
}

//NEG (undocumented)
//#0xED6C:
func opcode0xED6C(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED6D:
func opcode0xED6D(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 0 (undocumented)
//#0xED6E:
func opcode0xED6E(c *CPU) int {
	c.im = 0
	return 8
}

//RLD
//#0xED6F:
func opcode0xED6F(c *CPU) int {
	c.rld()
	return 18
}

//IN (C)
//#0xED70:
func opcode0xED70(c *CPU) int {
	c.inPortC()
	return 12
}

//OUT (C), 0
//#0xED71:
func opcode0xED71(c *CPU) int {
	c.out(c.getBC(), 0)
	return 12
}

//SBC HL, SP
//#0xED72:
func opcode0xED72(c *CPU) int {
	c.sbcHL(c.sp)
	return 15
}

//LD (nn), SP
//#0xED73:
func opcode0xED73(c *CPU) int {
	c.writeWord(c.readImmediateWord(), c.sp)
	return 20
}

//NEG (undocumented)
//#0xED74:
func opcode0xED74(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED75:
func opcode0xED75(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 1 (undocumented)
//#0xED76:
func opcode0xED76(c *CPU) int {
	c.im = 1
	return 8
}

//IN A, (C)
//#0xED78:
func opcode0xED78(c *CPU) int {
	c.a = c.inPortC()
	return 12
}

//OUT (C), A
//#0xED79:
func opcode0xED79(c *CPU) int {
	c.out(c.getBC(), c.a)
	return 12
}

//ADC HL, SP
//#0xED7A:
func opcode0xED7A(c *CPU) int {
	c.adcHL(c.sp)
	return 15
}

//LD SP, (nn)
//#0xED7B:
func opcode0xED7B(c *CPU) int {
	c.sp = c.readWord(c.readImmediateWord())
	return 20
}

//NEG (undocumented)
//#0xED7C:
func opcode0xED7C(c *CPU) int {
	c.neg()
	return 8
}

//RETN (undocumented)
//#0xED7D:
func opcode0xED7D(c *CPU) int {
	c.pc = c.popStack()
	c.iff1 = c.iff2
	return 14
}

//IM 2 (undocumented)
//#0xED7E:
func opcode0xED7E(c *CPU) int {
	c.im = 2
	return 8
}

//LDI
//#0xEDA0:
func opcode0xEDA0(c *CPU) int {
	c.ldi(1)
	return 16
}

//CPI
//#0xEDA1:
func opcode0xEDA1(c *CPU) int {
	c.cpi(1)
	return 16
}

//INI
//#0xEDA2:
func opcode0xEDA2(c *CPU) int {
	c.ini(1)
	return 16
}

//OUTI
//#0xEDA3:
func opcode0xEDA3(c *CPU) int {
	c.outi(1)
	return 16
}

//LDD
//#0xEDA8:
func opcode0xEDA8(c *CPU) int {
	c.ldi(-1)
	return 16
}

//CPD
//#0xEDA9:
func opcode0xEDA9(c *CPU) int {
	c.cpi(-1)
	return 16
}

//IND
//#0xEDAA:
func opcode0xEDAA(c *CPU) int {
	c.ini(-1)
	return 16
}

//OUTD
//#0xEDAB:
func opcode0xEDAB(c *CPU) int {
	c.outi(-1)
	return 16
}

//LDIR
//#0xEDB0:
func opcode0xEDB0(c *CPU) int {
	c.ldi(1)
	return c.repeat(c.getBC() != 0)
}

//CPIR
//#0xEDB1:
func opcode0xEDB1(c *CPU) int {
	c.cpi(1)
	return c.repeat(c.getBC() != 0 && !c.isSetFlag(zeroFlag))
}

//INIR
//#0xEDB2:
func opcode0xEDB2(c *CPU) int {
	c.ini(1)
	return c.repeat(c.b != 0)
}

//OTIR
//#0xEDB3:
func opcode0xEDB3(c *CPU) int {
	c.outi(1)
	return c.repeat(c.b != 0)
}

//LDDR
//#0xEDB8:
func opcode0xEDB8(c *CPU) int {
	c.ldi(-1)
	return c.repeat(c.getBC() != 0)
}

//CPDR
//#0xEDB9:
func opcode0xEDB9(c *CPU) int {
	c.cpi(-1)
	return c.repeat(c.getBC() != 0 && !c.isSetFlag(zeroFlag))
}

//INDR
//#0xEDBA:
func opcode0xEDBA(c *CPU) int {
	c.ini(-1)
	return c.repeat(c.b != 0)
}

//OTDR
//#0xEDBB:
func opcode0xEDBB(c *CPU) int {
	c.outi(-1)
	return c.repeat(c.b != 0)
}
