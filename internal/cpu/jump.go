package cpu

// condition evaluates the condition encoded in bits 3-4 of instr.
//
//	00 NZ, 01 Z, 10 NC, 11 C
func (c *CPU) condition(instr uint8) bool {
	switch instr >> 3 & 0x3 {
	case 0:
		return !c.Flag(FlagZero)
	case 1:
		return c.Flag(FlagZero)
	case 2:
		return !c.Flag(FlagCarry)
	default:
		return c.Flag(FlagCarry)
	}
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.Push16(c.PC)
	c.PC = address
}

// callConditional pushes the address of the next instruction onto the stack and
// jumps to the given address if the given condition is true.
//
//	CALL cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) callConditional(condition bool, address uint16) {
	if condition {
		c.branched = true
		c.call(address)
	}
}

// jumpRelative jumps to the address relative to the current PC, which
// already points past the offset.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.PC += uint16(int8(offset))
}

// jumpRelativeConditional jumps to the address relative to the current PC if
// the given condition is true.
//
//	JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelativeConditional(condition bool, offset uint8) {
	if condition {
		c.branched = true
		c.jumpRelative(offset)
	}
}

// jumpAbsoluteConditional jumps to the given address if the given condition is
// true.
//
//	JP cc, nn
//	cc = NZ, Z, NC, C
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsoluteConditional(condition bool, address uint16) {
	if condition {
		c.branched = true
		c.PC = address
	}
}

// ret pops the top two bytes off the stack and jumps to that address.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.Pop16()
}

// retConditional pops the top two bytes off the stack and jumps to that
// address if the given condition is true.
//
//	RET cc
//	cc = NZ, Z, NC, C
func (c *CPU) retConditional(condition bool) {
	if condition {
		c.branched = true
		c.ret()
	}
}

// setIME sets the interrupt master enable flag.
//
//	DI
//	EI
//	RETI
func (c *CPU) setIME(enabled bool) {
	if c.ime != enabled {
		c.log.Debugf("cpu: IME %t at 0x%04X", enabled, c.PC)
	}
	c.ime = enabled
}
