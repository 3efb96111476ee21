package cpu

// alu dispatches the 8-bit arithmetic and logic operations that share
// the encoding 10 ooo rrr (and 11 ooo 110 for the immediate forms).
//
//	ooo = ADD, ADC, SUB, SBC, AND, XOR, OR, CP
func (c *CPU) alu(op uint8, n uint8) {
	switch op & 0x7 {
	case 0:
		c.add(n, false)
	case 1:
		c.add(n, true)
	case 2:
		c.sub(n, false)
	case 3:
		c.sub(n, true)
	case 4:
		c.and(n)
	case 5:
		c.xor(n)
	case 6:
		c.or(n)
	case 7:
		c.compare(n)
	}
}

// add adds n (and the carry flag, for ADC) to the A Register.
//
//	ADD A, n
//	ADC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint8
	if withCarry {
		carry = c.carry()
	}
	sum := uint16(c.A) + uint16(n) + uint16(carry)
	c.setFlags(uint8(sum) == 0, false, (c.A&0xF)+(n&0xF)+carry > 0xF, sum > 0xFF)
	c.A = uint8(sum)
}

// sub subtracts n (and the carry flag, for SBC) from the A Register.
//
//	SUB n
//	SBC A, n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(n uint8, withCarry bool) {
	var carry int16
	if withCarry {
		carry = int16(c.carry())
	}
	diff := int16(c.A) - int16(n) - carry
	c.setFlags(uint8(diff) == 0, true, int16(c.A&0xF)-int16(n&0xF)-carry < 0, diff < 0)
	c.A = uint8(diff)
}

// and performs a bitwise AND operation on n and the A Register.
//
//	AND n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or performs a bitwise OR operation on n and the A Register.
//
//	OR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor performs a bitwise XOR operation on n and the A Register.
//
//	XOR n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare compares n to the A Register, leaving A unchanged.
//
//	CP n
//	n = d8, B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if A == n.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if A < n.
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0xF > c.A&0xF, n > c.A)
}

// increment n by 1 and set the flags accordingly.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Not affected.
func (c *CPU) increment(n uint8) uint8 {
	incremented := n + 1
	c.setFlags(incremented == 0, false, n&0xF == 0xF, c.Flag(FlagCarry))
	return incremented
}

// decrement n by 1 and set the flags accordingly.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Not affected.
func (c *CPU) decrement(n uint8) uint8 {
	decremented := n - 1
	c.setFlags(decremented == 0, true, n&0xF == 0, c.Flag(FlagCarry))
	return decremented
}

// addHL adds n to the HL register pair.
//
//	ADD HL, nn
//	nn = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func (c *CPU) addHL(n uint16) {
	hl := c.HL()
	sum := uint32(hl) + uint32(n)
	c.setFlags(c.Flag(FlagZero), false, (hl&0xFFF)+(n&0xFFF) > 0xFFF, sum > 0xFFFF)
	c.SetHL(uint16(sum))
}

// addSPSigned returns SP plus the signed offset e, without modifying
// SP. The flags come from adding e to the low byte of SP as an
// unsigned byte.
//
//	ADD SP, e
//	LD HL, SP+e
//	e = 8-bit signed immediate value
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPSigned(e uint8) uint16 {
	sp := c.SP
	c.setFlags(false, false, (sp&0xF)+uint16(e&0xF) > 0xF, (sp&0xFF)+uint16(e) > 0xFF)
	return sp + uint16(int8(e))
}

// decimalAdjust corrects the A Register to binary coded decimal after
// an addition or subtraction of two BCD values.
//
//	DAA
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the correction overflowed.
func (c *CPU) decimalAdjust() {
	var correction uint8
	carry := c.Flag(FlagCarry)
	subtract := c.Flag(FlagSubtract)

	if c.Flag(FlagHalfCarry) || (!subtract && c.A&0xF > 0x9) {
		correction |= 0x06
	}
	if carry || (!subtract && c.A > 0x99) {
		correction |= 0x60
		carry = true
	}

	if subtract {
		c.A -= correction
	} else {
		c.A += correction
	}
	c.setFlags(c.A == 0, subtract, false, carry)
}

// complement flips every bit of the A Register.
//
//	CPL
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func (c *CPU) complement() {
	c.A = ^c.A
	c.SetFlag(FlagSubtract | FlagHalfCarry)
}

// setCarry sets the carry flag.
//
//	SCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func (c *CPU) setCarry() {
	c.setFlags(c.Flag(FlagZero), false, false, true)
}

// complementCarry flips the carry flag.
//
//	CCF
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func (c *CPU) complementCarry() {
	c.setFlags(c.Flag(FlagZero), false, false, !c.Flag(FlagCarry))
}
