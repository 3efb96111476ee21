package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownInstruction is matched by every UnknownInstructionError.
var ErrUnknownInstruction = errors.New("unknown instruction")

// UnknownInstructionError is returned by Tick when the opcode at PC
// has no instruction. PC is left pointing at the opcode.
type UnknownInstructionError struct {
	Opcode uint8
	Addr   uint16
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("cpu: unknown instruction 0x%02X at 0x%04X", e.Opcode, e.Addr)
}

func (e *UnknownInstructionError) Is(target error) bool {
	return target == ErrUnknownInstruction
}
