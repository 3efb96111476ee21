package utils

// JoinBytes combines a high and a low byte into a 16-bit value.
func JoinBytes(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// SplitUint16 returns the high and low bytes of value. It is the inverse
// of JoinBytes.
func SplitUint16(value uint16) (high, low uint8) {
	return uint8(value >> 8), uint8(value & 0xFF)
}
