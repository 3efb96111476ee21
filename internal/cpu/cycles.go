package cpu

// instructionCycles holds the number of machine cycles taken by each
// primary opcode. Conditional instructions list the cost of the
// untaken branch, see branchCycles. STOP, HALT and the undefined
// opcodes are counted as a single cycle.
var instructionCycles = [256]uint8{
	1, 3, 2, 2, 1, 1, 2, 1, 5, 2, 2, 2, 1, 1, 2, 1,
	1, 3, 2, 2, 1, 1, 2, 1, 3, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 1, 1, 2, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	2, 3, 2, 2, 3, 3, 3, 1, 2, 2, 2, 2, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 2, 2, 2, 2, 2, 1, 2, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1,
	2, 3, 3, 4, 3, 4, 2, 4, 2, 4, 3, 2, 3, 6, 2, 4,
	2, 3, 3, 1, 3, 4, 2, 4, 2, 4, 3, 1, 3, 1, 2, 4,
	3, 3, 2, 1, 1, 4, 2, 4, 4, 1, 4, 1, 1, 1, 2, 4,
	3, 3, 2, 1, 1, 4, 2, 4, 3, 2, 4, 1, 1, 1, 2, 4,
}

// branchCycles holds the extra cycles taken by a conditional
// instruction when its condition holds.
var branchCycles = [256]uint8{
	0x20: 1, 0x28: 1, 0x30: 1, 0x38: 1, // JR cc
	0xC0: 3, 0xC8: 3, 0xD0: 3, 0xD8: 3, // RET cc
	0xC2: 1, 0xCA: 1, 0xD2: 1, 0xDA: 1, // JP cc
	0xC4: 3, 0xCC: 3, 0xD4: 3, 0xDC: 3, // CALL cc
}

// cbCycles returns the number of machine cycles taken by a CB-prefixed
// instruction, prefix included.
func cbCycles(instr uint8) uint8 {
	if Register(instr&0x7) != RegMemHL {
		return 2
	}
	if instr>>6&0x3 == 1 { // BIT n, (HL)
		return 3
	}
	return 4
}
