package cpu

import (
	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/log"
)

// Option configures a CPU.
type Option func(c *CPU)

// WithLogger sets the logger used by the CPU. The CPU only logs at
// debug level.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) {
		c.log = l
	}
}

// WithModel sets the hardware model, which decides the value
// of the A register after Init.
func WithModel(model types.Model) Option {
	return func(c *CPU) {
		c.model = model
	}
}

// TolerateUndefined makes the undefined opcodes (0xD3, 0xDB, 0xDD,
// 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC and 0xFD) execute as
// one byte no-ops rather than failing with an
// UnknownInstructionError.
func TolerateUndefined() Option {
	return func(c *CPU) {
		c.tolerateUndefined = true
	}
}
