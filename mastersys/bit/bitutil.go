package bit

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// IsSet will check if the bit at the specified index is set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

// Set will return the passed byte with the bit at the specified index set to 1.
func Set(index, byte uint8) uint8 {
	return byte | (1 << index)
}

// Reset will return the passed byte with the bit at the specified index set to 0.
func Reset(index, byte uint8) uint8 {
	return byte & ((1 << index) ^ 0xFF)
}

// GetBitValue returns a byte set to the value of the bit at the specified index.
func GetBitValue(index, byte uint8) uint8 {
	if IsSet(index, byte) {
		return 1
	}

	return 0
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// SetHigh replaces the high byte of a 16 bit value.
func SetHigh(value uint16, high uint8) uint16 {
	return uint16(high)<<8 | value&0x00FF
}

// SetLow replaces the low byte of a 16 bit value.
func SetLow(value uint16, low uint8) uint16 {
	return value&0xFF00 | uint16(low)
}

// ParityEven reports whether value has an even number of set bits.
func ParityEven(value uint8) bool {
	value ^= value >> 4
	value ^= value >> 2
	value ^= value >> 1
	return value&1 == 0
}

// ExtractBits extracts bits from highBit to lowBit (inclusive)
// Example: ExtractBits(0b11010110, 6, 4) -> 0b101 (extracts bits 6, 5, 4)
func ExtractBits(value uint8, highBit, lowBit uint8) uint8 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint8((1 << width) - 1)
	return (value >> shift) & mask
}
