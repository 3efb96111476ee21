package cpu

import "github.com/thelolagemann/go-dmg/pkg/utils"

// decodeCB executes a CB-prefixed instruction. Every one of the 256
// encodings is defined.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func (c *CPU) decodeCB(instr uint8) {
	r := Register(instr)
	value := c.get(r)
	bit := instr >> 3 & 0x7

	switch instr >> 6 & 0x3 {
	case 0:
		switch bit {
		case 0:
			value = c.rotateLeftCarry(value)
		case 1:
			value = c.rotateRightCarry(value)
		case 2:
			value = c.rotateLeftThroughCarry(value)
		case 3:
			value = c.rotateRightThroughCarry(value)
		case 4:
			value = c.shiftLeftArithmetic(value)
		case 5:
			value = c.shiftRightArithmetic(value)
		case 6:
			value = c.swap(value)
		case 7:
			value = c.shiftRightLogical(value)
		}
	case 1:
		c.testBit(value, bit)
		return // BIT doesn't change the value of the source register
	case 2: // RES
		value = utils.ClearBit(value, bit)
	case 3: // SET
		value = utils.SetBit(value, bit)
	}

	c.set(r, value)
}

// testBit tests the bit at the given position in the given value.
//
//	BIT n, r
//	n = 0-7
//	r = A, B, C, D, E, H, L, (HL)
//
// Flags affected:
//
//	Z - Set if bit n of Register r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, bit uint8) {
	c.setFlags(!utils.TestBit(value, bit), false, true, c.Flag(FlagCarry))
}
