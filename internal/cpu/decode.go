package cpu

// decode executes a primary opcode. PC points just past the opcode, and
// each case consumes exactly the operand bytes of its encoding. Opcodes
// that don't fit the regular 00/01/10/11 groups are handled first.
func (c *CPU) decode(instr uint8) {
	switch instr {
	case OpNop:
	case OpLdA16SP:
		c.storeSP(c.fetch16())
	case OpStop:
		c.fetch() // STOP is followed by a padding byte
		c.stopped = true
		c.log.Debugf("cpu: STOP at 0x%04X", c.PC-2)
	case OpJrR8:
		c.jumpRelative(c.fetch())
	case OpHalt:
		c.halted = true
		c.log.Debugf("cpu: HALT at 0x%04X", c.PC-1)
	case OpJpa16:
		c.PC = c.fetch16()
	case OpRet:
		c.ret()
	case OpCalla16:
		c.call(c.fetch16())
	case OpReti:
		c.ret()
		c.setIME(true)
	case OpLdhA8A:
		c.loadHigh(c.fetch(), true)
	case OpLdMemCA:
		c.loadHigh(c.C, true)
	case OpAddSPS8:
		c.SP = c.addSPSigned(c.fetch())
	case OpJpHL:
		c.PC = c.HL()
	case OpLdA16A:
		c.mem.Write(c.fetch16(), c.A)
	case OpLdhAA8:
		c.loadHigh(c.fetch(), false)
	case OpLdAMemC:
		c.loadHigh(c.C, false)
	case OpDi:
		c.setIME(false)
	case OpLdHLSPS8:
		c.SetHL(c.addSPSigned(c.fetch()))
	case OpLdSPHL:
		c.SP = c.HL()
	case OpLdAA16:
		c.A = c.mem.Read(c.fetch16())
	case OpEi:
		c.setIME(true)
	default:
		switch instr >> 6 & 0x3 {
		case 0: // 0x00 - 0x3F
			switch instr & 0x7 {
			case 0: // JR cc, e
				c.jumpRelativeConditional(c.condition(instr), c.fetch())
			case 1:
				if instr>>3&1 == 1 { // ADD HL, rr
					c.addHL(c.pair(pairOperand(instr)))
				} else { // LD rr, d16
					c.setPair(pairOperand(instr), c.fetch16())
				}
			case 2: // LD (rr), A / LD A, (rr)
				c.loadIndirect(instr)
			case 3: // INC/DEC rr
				p := pairOperand(instr)
				if instr>>3&1 == 1 {
					c.setPair(p, c.pair(p)-1)
				} else {
					c.setPair(p, c.pair(p)+1)
				}
			case 4: // INC r
				r := Register(instr >> 3)
				c.set(r, c.increment(c.get(r)))
			case 5: // DEC r
				r := Register(instr >> 3)
				c.set(r, c.decrement(c.get(r)))
			case 6: // LD r, d8
				c.set(Register(instr>>3), c.fetch())
			case 7:
				switch op := instr >> 3 & 0x7; op {
				case 0, 1, 2, 3: // RLCA, RRCA, RLA, RRA
					c.rotateAccumulator(op)
				case 4:
					c.decimalAdjust()
				case 5:
					c.complement()
				case 6:
					c.setCarry()
				case 7:
					c.complementCarry()
				}
			}
		case 1: // 0x40 - 0x7F LD r, r'
			c.set(Register(instr>>3), c.get(Register(instr)))
		case 2: // 0x80 - 0xBF ALU A, r
			c.alu(instr>>3, c.get(Register(instr)))
		case 3: // 0xC0 - 0xFF
			switch instr & 0x7 {
			case 0: // RET cc
				c.retConditional(c.condition(instr))
			case 1: // POP rr
				c.setPair(stackOperand(instr), c.Pop16())
			case 2: // JP cc, nn
				c.jumpAbsoluteConditional(c.condition(instr), c.fetch16())
			case 4: // CALL cc, nn
				c.callConditional(c.condition(instr), c.fetch16())
			case 5: // PUSH rr
				c.Push16(c.pair(stackOperand(instr)))
			case 6: // ALU A, d8
				c.alu(instr>>3, c.fetch())
			case 7: // RST n
				c.call(uint16(instr & 0x38))
			}
		}
	}
}
