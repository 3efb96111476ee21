package cpu

import (
	"fmt"

	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/log"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, and accessors for the
	// 16-bit register pairs.
	Registers

	mem Memory

	ime     bool
	halted  bool
	stopped bool

	// branched is set by a conditional instruction whose condition held
	branched bool
	cycles   uint64

	model             types.Model
	tolerateUndefined bool
	log               log.Logger
}

// New creates a new CPU with zeroed registers and memory. Init
// must be called before the first Tick.
func New(opts ...Option) *CPU {
	c := &CPU{
		model: types.DMGABC,
		log:   log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Init loads the register values left behind by the boot ROM.
func (c *CPU) Init() {
	c.SetAF(0x01B0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.A = c.model.Accumulator()
	c.PC = 0x0100
	c.SP = 0xFFFE
}

// Tick fetches, decodes and executes exactly one instruction.
// A halted or stopped CPU does nothing until Resume is called.
//
// An *UnknownInstructionError is returned if the opcode at PC
// has no instruction, in which case the CPU is left untouched.
func (c *CPU) Tick() error {
	if c.halted || c.stopped {
		return nil
	}

	address := c.PC
	instr := c.fetch()
	if undefinedOpcodes[instr] {
		if !c.tolerateUndefined {
			c.PC = address
			return &UnknownInstructionError{Opcode: instr, Addr: address}
		}
		c.cycles++
		return nil
	}

	if instr == OpPrefixCB {
		cb := c.fetch()
		c.decodeCB(cb)
		c.cycles += uint64(cbCycles(cb))
		return nil
	}

	c.branched = false
	c.decode(instr)
	c.cycles += uint64(instructionCycles[instr])
	if c.branched {
		c.cycles += uint64(branchCycles[instr])
	}

	return nil
}

// fetch returns the byte at PC and advances PC.
func (c *CPU) fetch() uint8 {
	value := c.mem.Read(c.PC)
	c.PC++
	return value
}

// fetch16 returns the little-endian 16-bit operand at PC and
// advances PC past it. Both immediates and addresses are encoded
// this way.
func (c *CPU) fetch16() uint16 {
	low := c.fetch()
	high := c.fetch()
	return utils.JoinBytes(high, low)
}

// IME reports whether the interrupt master enable flag is set.
func (c *CPU) IME() bool {
	return c.ime
}

// Halted reports whether the CPU has executed a HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Stopped reports whether the CPU has executed a STOP.
func (c *CPU) Stopped() bool {
	return c.stopped
}

// Resume wakes the CPU from HALT or STOP, as an interrupt or a
// button press would.
func (c *CPU) Resume() {
	c.halted = false
	c.stopped = false
}

// Cycles returns the number of machine cycles executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// Model returns the hardware model the CPU was configured for.
func (c *CPU) Model() types.Model {
	return c.model
}

// Clone returns a deep copy of the CPU, sharing no state with it.
func (c *CPU) Clone() *CPU {
	clone := *c
	return &clone
}

// LoadFrom replaces the state of the CPU with the state of other.
// The logger of the receiver is kept.
func (c *CPU) LoadFrom(other *CPU) {
	l := c.log
	*c = *other
	c.log = l
}

func (c *CPU) String() string {
	return fmt.Sprintf(
		"A: %02X  F: %02X  (Z:%d N:%d H:%d C:%d)\nB: %02X  C: %02X\nD: %02X  E: %02X\nH: %02X  L: %02X\nSP: %04X  PC: %04X  IME: %t  HALT: %t  STOP: %t  cycles: %d",
		c.A, c.F, b2i(c.Flag(FlagZero)), b2i(c.Flag(FlagSubtract)), b2i(c.Flag(FlagHalfCarry)), b2i(c.Flag(FlagCarry)),
		c.B, c.C, c.D, c.E, c.H, c.L,
		c.SP, c.PC, c.ime, c.halted, c.stopped, c.cycles,
	)
}

func b2i(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
