package cpu

// highPage is the base of the page addressed by LDH and LD (C).
const highPage uint16 = 0xFF00

// storeSP stores SP at the given address, low byte first.
//
//	LD (nn), SP
//	nn = 16-bit immediate address
func (c *CPU) storeSP(address uint16) {
	c.mem.Write(address, uint8(c.SP))
	c.mem.Write(address+1, uint8(c.SP>>8))
}

// indirectAddress returns the address used by the LD (rr),A and
// LD A,(rr) family, post incrementing or decrementing HL for the
// (HL+) and (HL-) forms.
//
//	rr = BC, DE, HL+, HL-
func (c *CPU) indirectAddress(instr uint8) uint16 {
	switch instr >> 4 & 0x3 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		hl := c.HL()
		c.SetHL(hl + 1)
		return hl
	default:
		hl := c.HL()
		c.SetHL(hl - 1)
		return hl
	}
}

// loadIndirect moves a byte between A and the memory addressed by
// a register pair.
//
//	LD (rr), A
//	LD A, (rr)
func (c *CPU) loadIndirect(instr uint8) {
	address := c.indirectAddress(instr)
	if instr>>3&1 == 1 {
		c.A = c.mem.Read(address)
	} else {
		c.mem.Write(address, c.A)
	}
}

// loadHigh moves a byte between A and the high page.
//
//	LDH (n), A
//	LDH A, (n)
//	LD (C), A
//	LD A, (C)
func (c *CPU) loadHigh(offset uint8, toMemory bool) {
	if toMemory {
		c.mem.Write(highPage+uint16(offset), c.A)
	} else {
		c.A = c.mem.Read(highPage + uint16(offset))
	}
}
