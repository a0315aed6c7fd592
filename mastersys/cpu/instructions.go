package cpu

import "github.com/valerio/go-mastersys/mastersys/bit"

func (c *CPU) pushStack(value uint16) {
	c.sp--
	c.bus.WriteByte(c.sp, bit.High(value))
	c.sp--
	c.bus.WriteByte(c.sp, bit.Low(value))
}

func (c *CPU) popStack() uint16 {
	low := c.bus.ReadByte(c.sp)
	c.sp++
	high := c.bus.ReadByte(c.sp)
	c.sp++

	return bit.Combine(high, low)
}

func (c *CPU) inc(r *uint8) {
	value := *r + 1
	*r = value

	c.f = (c.f & uint8(carryFlag)) | sz53Table[value] |
		boolToFlag(value&0x0F == 0, halfCarryFlag) |
		boolToFlag(value == 0x80, overflowFlag)
}

func (c *CPU) dec(r *uint8) {
	old := *r
	value := old - 1
	*r = value

	c.f = (c.f & uint8(carryFlag)) | uint8(subFlag) | sz53Table[value] |
		boolToFlag(old&0x0F == 0, halfCarryFlag) |
		boolToFlag(value == 0x7F, overflowFlag)
}

// addToA implements ADD and ADC, carry is either 0 or 1.
func (c *CPU) addToA(value, carry uint8) {
	a := c.a
	result := uint16(a) + uint16(value) + uint16(carry)
	r := uint8(result)

	c.a = r
	c.f = sz53Table[r] |
		boolToFlag(result > 0xFF, carryFlag) |
		boolToFlag((a^value^r)&0x10 != 0, halfCarryFlag) |
		boolToFlag((a^value^0x80)&(a^r)&0x80 != 0, overflowFlag)
}

// subtract computes A - value - carry and sets flags for SUB, SBC and CP. The result is returned, not stored.
func (c *CPU) subtract(value, carry uint8) uint8 {
	a := c.a
	result := int(a) - int(value) - int(carry)
	r := uint8(result)

	c.f = sz53Table[r] | uint8(subFlag) |
		boolToFlag(result < 0, carryFlag) |
		boolToFlag((a^value^r)&0x10 != 0, halfCarryFlag) |
		boolToFlag((a^value)&(a^r)&0x80 != 0, overflowFlag)

	return r
}

func (c *CPU) sub(value uint8) {
	c.a = c.subtract(value, 0)
}

func (c *CPU) sbc(value uint8) {
	c.a = c.subtract(value, c.flagToBit(carryFlag))
}

// cp compares A with value, the undocumented X/Y flags come from the operand instead of the result.
func (c *CPU) cp(value uint8) {
	c.subtract(value, 0)
	c.f = (c.f &^ uint8(xyFlags)) | (value & uint8(xyFlags))
}

func (c *CPU) and(value uint8) {
	c.a &= value
	c.f = sz53pTable[c.a] | uint8(halfCarryFlag)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value
	c.f = sz53pTable[c.a]
}

func (c *CPU) or(value uint8) {
	c.a |= value
	c.f = sz53pTable[c.a]
}

func (c *CPU) neg() {
	value := c.a
	c.a = 0
	c.sub(value)
}

// addWords implements ADD HL/IX/IY,rr: S, Z and PV are preserved.
func (c *CPU) addWords(a, b uint16) uint16 {
	result := uint32(a) + uint32(b)
	r := uint16(result)

	c.f = (c.f & uint8(signFlag|zeroFlag|parityFlag)) |
		(bit.High(r) & uint8(xyFlags)) |
		boolToFlag((a^b^r)&0x1000 != 0, halfCarryFlag) |
		boolToFlag(result > 0xFFFF, carryFlag)

	return r
}

func (c *CPU) adcHL(value uint16) {
	hl := c.getHL()
	result := uint32(hl) + uint32(value) + uint32(c.flagToBit(carryFlag))
	r := uint16(result)

	c.setHL(r)
	c.f = (bit.High(r) & uint8(signFlag|xyFlags)) |
		boolToFlag(r == 0, zeroFlag) |
		boolToFlag((hl^value^r)&0x1000 != 0, halfCarryFlag) |
		boolToFlag((hl^value^0x8000)&(hl^r)&0x8000 != 0, overflowFlag) |
		boolToFlag(result > 0xFFFF, carryFlag)
}

func (c *CPU) sbcHL(value uint16) {
	hl := c.getHL()
	result := int(hl) - int(value) - int(c.flagToBit(carryFlag))
	r := uint16(result)

	c.setHL(r)
	c.f = (bit.High(r) & uint8(signFlag|xyFlags)) | uint8(subFlag) |
		boolToFlag(r == 0, zeroFlag) |
		boolToFlag((hl^value^r)&0x1000 != 0, halfCarryFlag) |
		boolToFlag((hl^value)&(hl^r)&0x8000 != 0, overflowFlag) |
		boolToFlag(result < 0, carryFlag)
}

// rotateA finishes RLCA/RRCA/RLA/RRA: only H, N, C and the X/Y copies change.
func (c *CPU) rotateA(value uint8, carry bool) {
	c.a = value
	c.f = (c.f & uint8(signFlag|zeroFlag|parityFlag)) |
		(value & uint8(xyFlags)) |
		boolToFlag(carry, carryFlag)
}

func (c *CPU) rlca() {
	c.rotateA((c.a<<1)|(c.a>>7), c.a&0x80 != 0)
}

func (c *CPU) rrca() {
	c.rotateA((c.a>>1)|(c.a<<7), c.a&0x01 != 0)
}

func (c *CPU) rla() {
	c.rotateA((c.a<<1)|c.flagToBit(carryFlag), c.a&0x80 != 0)
}

func (c *CPU) rra() {
	c.rotateA((c.a>>1)|(c.flagToBit(carryFlag)<<7), c.a&0x01 != 0)
}

// shifted stores the result of a CB-prefixed rotate or shift and sets S, Z, P and C from it.
func (c *CPU) shifted(r *uint8, value uint8, carry bool) {
	*r = value
	c.f = sz53pTable[value] | boolToFlag(carry, carryFlag)
}

func (c *CPU) rlc(r *uint8) {
	v := *r
	c.shifted(r, (v<<1)|(v>>7), v&0x80 != 0)
}

func (c *CPU) rrc(r *uint8) {
	v := *r
	c.shifted(r, (v>>1)|(v<<7), v&0x01 != 0)
}

func (c *CPU) rl(r *uint8) {
	v := *r
	c.shifted(r, (v<<1)|c.flagToBit(carryFlag), v&0x80 != 0)
}

func (c *CPU) rr(r *uint8) {
	v := *r
	c.shifted(r, (v>>1)|(c.flagToBit(carryFlag)<<7), v&0x01 != 0)
}

func (c *CPU) sla(r *uint8) {
	v := *r
	c.shifted(r, v<<1, v&0x80 != 0)
}

func (c *CPU) sra(r *uint8) {
	v := *r
	c.shifted(r, (v>>1)|(v&0x80), v&0x01 != 0)
}

// sll is the undocumented shift that feeds a 1 into bit 0.
func (c *CPU) sll(r *uint8) {
	v := *r
	c.shifted(r, (v<<1)|0x01, v&0x80 != 0)
}

func (c *CPU) srl(r *uint8) {
	v := *r
	c.shifted(r, v>>1, v&0x01 != 0)
}

// bitTest implements BIT n. xy is the byte the undocumented X/Y flags are copied from:
// the operand for registers, the high byte of the effective address for memory forms.
func (c *CPU) bitTest(index uint8, value uint8, xy uint8) {
	set := bit.IsSet(index, value)

	c.f = (c.f & uint8(carryFlag)) | uint8(halfCarryFlag) |
		(xy & uint8(xyFlags)) |
		boolToFlag(!set, zeroFlag|parityFlag) |
		boolToFlag(set && index == 7, signFlag)
}

func (c *CPU) daa() {
	a := c.a
	correction := uint8(0)
	carry := c.isSetFlag(carryFlag)

	if c.isSetFlag(halfCarryFlag) || a&0x0F > 9 {
		correction |= 0x06
	}
	if carry || a > 0x99 {
		correction |= 0x60
		carry = true
	}

	var halfCarry bool
	if c.isSetFlag(subFlag) {
		halfCarry = c.isSetFlag(halfCarryFlag) && a&0x0F < 6
		c.a = a - correction
	} else {
		halfCarry = a&0x0F > 9
		c.a = a + correction
	}

	c.f = sz53pTable[c.a] | (c.f & uint8(subFlag)) |
		boolToFlag(carry, carryFlag) |
		boolToFlag(halfCarry, halfCarryFlag)
}

func (c *CPU) cpl() {
	c.a = ^c.a
	c.f = (c.f & uint8(signFlag|zeroFlag|parityFlag|carryFlag)) |
		uint8(halfCarryFlag|subFlag) |
		(c.a & uint8(xyFlags))
}

func (c *CPU) scf() {
	c.f = (c.f & uint8(signFlag|zeroFlag|parityFlag)) |
		uint8(carryFlag) |
		(c.a & uint8(xyFlags))
}

func (c *CPU) ccf() {
	carry := c.isSetFlag(carryFlag)
	c.f = (c.f & uint8(signFlag|zeroFlag|parityFlag)) |
		(c.a & uint8(xyFlags)) |
		boolToFlag(carry, halfCarryFlag) |
		boolToFlag(!carry, carryFlag)
}

// jr performs a relative jump if condition holds, the displacement is always consumed.
func (c *CPU) jr(condition bool) int {
	offset := c.readSignedImmediate()
	if !condition {
		return 7
	}

	c.pc = uint16(int32(c.pc) + int32(offset))
	return 12
}

func (c *CPU) jp(condition bool) int {
	target := c.readImmediateWord()
	if condition {
		c.pc = target
	}
	return 10
}

func (c *CPU) call(condition bool) int {
	target := c.readImmediateWord()
	if !condition {
		return 10
	}

	c.pushStack(c.pc)
	c.pc = target
	return 17
}

func (c *CPU) ret(condition bool) int {
	if !condition {
		return 5
	}

	c.pc = c.popStack()
	return 11
}

func (c *CPU) rst(target uint16) int {
	c.pushStack(c.pc)
	c.pc = target
	return 11
}

// exStack swaps the word on top of the stack with the given register pair.
func (c *CPU) exStack(value uint16) uint16 {
	old := c.readWord(c.sp)
	c.writeWord(c.sp, value)
	return old
}

func (c *CPU) exx() {
	s := &c.shadow
	c.b, s.b = s.b, c.b
	c.c, s.c = s.c, c.c
	c.d, s.d = s.d, c.d
	c.e, s.e = s.e, c.e
	c.h, s.h = s.h, c.h
	c.l, s.l = s.l, c.l
}

func (c *CPU) exAF() {
	c.a, c.shadow.a = c.shadow.a, c.a
	c.f, c.shadow.f = c.shadow.f, c.f
}

// indexed returns the effective address of (IX+d) or (IY+d), consuming the displacement.
func (c *CPU) indexed(idx uint16) uint16 {
	offset := c.readSignedImmediate()
	return uint16(int32(idx) + int32(offset))
}
