package cpu

import "github.com/valerio/go-mastersys/mastersys/bit"

// shiftOps are the CB rotate/shift group, in opcode order (bits 5-3 of the opcode).
var shiftOps = [8]func(*CPU, *uint8){
	(*CPU).rlc,
	(*CPU).rrc,
	(*CPU).rl,
	(*CPU).rr,
	(*CPU).sla,
	(*CPU).sra,
	(*CPU).sll,
	(*CPU).srl,
}

var opcodesCB [256]Opcode

func init() {
	for i := 0; i < 256; i++ {
		opcodesCB[i] = newCBOpcode(uint8(i))
	}
}

// register maps the 3 bit register field of an opcode to the register it names.
// Index 6 is the (HL) memory operand and returns nil.
func (c *CPU) register(index uint8) *uint8 {
	switch index {
	case 0:
		return &c.b
	case 1:
		return &c.c
	case 2:
		return &c.d
	case 3:
		return &c.e
	case 4:
		return &c.h
	case 5:
		return &c.l
	case 7:
		return &c.a
	}
	return nil
}

// newCBOpcode builds the CB prefixed instruction for the given opcode byte.
// The layout is regular: bits 7-6 select the group (shift, BIT, RES, SET),
// bits 5-3 the shift kind or bit index and bits 2-0 the operand.
func newCBOpcode(opcode uint8) Opcode {
	group, index, reg := opcode>>6, (opcode>>3)&7, opcode&7

	if group == 1 {
		if reg == 6 {
			return func(c *CPU) int {
				address := c.getHL()
				c.bitTest(index, c.read(address), bit.High(address))
				return 12
			}
		}
		return func(c *CPU) int {
			value := *c.register(reg)
			c.bitTest(index, value, value)
			return 8
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

	if reg == 6 {
		return func(c *CPU) int {
			address := c.getHL()
			value := c.read(address)
			apply(c, &value)
			c.write(address, value)
			return 15
		}
	}

	return func(c *CPU) int {
		apply(c, c.register(reg))
		return 8
	}
}
