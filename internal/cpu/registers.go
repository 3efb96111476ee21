package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-dmg/pkg/utils"
)

// Registers holds the 8-bit registers of the CPU. The 16-bit
// register pairs are views over two of these registers, with
// A, B, D and H forming the high byte.
//
//	16bit Hi   Lo   Name/Function
//	AF    A    F    Accumulator & Flags
//	BC    B    C    BC
//	DE    D    E    DE
//	HL    H    L    HL
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	F uint8
	H uint8
	L uint8
}

// AF returns the value of the AF register pair.
func (r *Registers) AF() uint16 { return utils.JoinBytes(r.A, r.F) }

// SetAF sets the value of the AF register pair.
func (r *Registers) SetAF(value uint16) { r.A, r.F = utils.SplitUint16(value) }

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 { return utils.JoinBytes(r.B, r.C) }

// SetBC sets the value of the BC register pair.
func (r *Registers) SetBC(value uint16) { r.B, r.C = utils.SplitUint16(value) }

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 { return utils.JoinBytes(r.D, r.E) }

// SetDE sets the value of the DE register pair.
func (r *Registers) SetDE(value uint16) { r.D, r.E = utils.SplitUint16(value) }

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 { return utils.JoinBytes(r.H, r.L) }

// SetHL sets the value of the HL register pair.
func (r *Registers) SetHL(value uint16) { r.H, r.L = utils.SplitUint16(value) }

// Register identifies an 8-bit operand in the order the
// opcodes encode them in their low (or middle) three bits.
type Register uint8

const (
	RegB Register = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegMemHL // the byte in memory addressed by HL
	RegA
)

var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r Register) String() string {
	return registerNames[r&7]
}

// Pair identifies a 16-bit operand.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
	PairAF
)

var pairNames = [5]string{"BC", "DE", "HL", "SP", "AF"}

func (p Pair) String() string {
	if int(p) >= len(pairNames) {
		return fmt.Sprintf("Pair(%d)", p)
	}
	return pairNames[p]
}

// get returns the value of the given 8-bit operand.
func (c *CPU) get(r Register) uint8 {
	switch r & 7 {
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case RegMemHL:
		return c.mem.Read(c.HL())
	default:
		return c.A
	}
}

// set stores value into the given 8-bit operand.
func (c *CPU) set(r Register, value uint8) {
	switch r & 7 {
	case RegB:
		c.B = value
	case RegC:
		c.C = value
	case RegD:
		c.D = value
	case RegE:
		c.E = value
	case RegH:
		c.H = value
	case RegL:
		c.L = value
	case RegMemHL:
		c.mem.Write(c.HL(), value)
	default:
		c.A = value
	}
}

// pair returns the value of the given 16-bit operand.
func (c *CPU) pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return c.BC()
	case PairDE:
		return c.DE()
	case PairHL:
		return c.HL()
	case PairSP:
		return c.SP
	case PairAF:
		return c.AF()
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// setPair stores value into the given 16-bit operand.
func (c *CPU) setPair(p Pair, value uint16) {
	switch p {
	case PairBC:
		c.SetBC(value)
	case PairDE:
		c.SetDE(value)
	case PairHL:
		c.SetHL(value)
	case PairSP:
		c.SP = value
	case PairAF:
		c.SetAF(value)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}

// pairOperand decodes bits 4-5 of instr, which select BC, DE,
// HL or SP.
func pairOperand(instr uint8) Pair {
	return Pair(instr >> 4 & 0x3)
}

// stackOperand decodes bits 4-5 of a PUSH or POP, where AF
// takes the place of SP.
func stackOperand(instr uint8) Pair {
	if p := pairOperand(instr); p != PairSP {
		return p
	}
	return PairAF
}
