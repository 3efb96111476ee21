package cpu

import "github.com/thelolagemann/go-dmg/internal/types"

// rotateLeftCarry rotates n left by 1 bit. The most significant bit is copied
// to both the carry flag and the least significant bit.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	result := n<<1 | n>>7
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// rotateRightCarry rotates n right by 1 bit. The least significant bit is
// copied to both the carry flag and the most significant bit.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	result := n>>1 | n<<7
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// rotateLeftThroughCarry rotates n left by 1 bit. The carry flag is copied to
// the least significant bit, and the most significant bit is copied to the
// carry flag.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	result := n<<1 | c.carry()
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// rotateRightThroughCarry rotates n right by 1 bit. The carry flag is copied
// to the most significant bit, and the least significant bit is copied to
// the carry flag.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	result := n>>1 | c.carry()<<7
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// shiftLeftArithmetic shifts n left into the carry flag, clearing bit 0.
//
//	SLA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	result := n << 1
	c.setFlags(result == 0, false, false, n&types.Bit7 != 0)
	return result
}

// shiftRightArithmetic shifts n right into the carry flag, keeping bit 7.
//
//	SRA n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	result := n&types.Bit7 | n>>1
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// shiftRightLogical shifts n right into the carry flag, clearing bit 7.
//
//	SRL n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	result := n >> 1
	c.setFlags(result == 0, false, false, n&types.Bit0 != 0)
	return result
}

// swap the upper and lower nibbles of n.
//
//	SWAP n
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(n uint8) uint8 {
	result := n<<4 | n>>4
	c.setFlags(result == 0, false, false, false)
	return result
}

// rotateAccumulator performs one of RLCA, RRCA, RLA or RRA. They behave
// like their prefixed counterparts on A, except that the zero flag is
// always reset.
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Reset.
//	C - Contains the bit rotated out.
func (c *CPU) rotateAccumulator(op uint8) {
	switch op & 0x3 {
	case 0: // RLCA
		c.A = c.rotateLeftCarry(c.A)
	case 1: // RRCA
		c.A = c.rotateRightCarry(c.A)
	case 2: // RLA
		c.A = c.rotateLeftThroughCarry(c.A)
	case 3: // RRA
		c.A = c.rotateRightThroughCarry(c.A)
	}
	c.ResetFlag(FlagZero)
}
