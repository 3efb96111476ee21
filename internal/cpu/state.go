package cpu

import (
	"github.com/thelolagemann/go-dmg/internal/types"
)

var _ types.Stater = (*CPU)(nil)

// Save writes the registers, the IME and low power state, the cycle
// count and the whole of memory to s.
func (c *CPU) Save(s *types.State) {
	s.Write16(c.PC)
	s.Write16(c.SP)
	s.Write16(c.AF())
	s.Write16(c.BC())
	s.Write16(c.DE())
	s.Write16(c.HL())
	s.WriteBool(c.ime)
	s.WriteBool(c.halted)
	s.WriteBool(c.stopped)
	s.Write64(c.cycles)
	s.WriteData(c.mem[:])
}

// Load restores the state written by Save. A truncated state is
// reported by s.Err, in which case the CPU is left untouched.
func (c *CPU) Load(s *types.State) {
	loaded := c.Clone()
	loaded.PC = s.Read16()
	loaded.SP = s.Read16()
	loaded.SetAF(s.Read16())
	loaded.SetBC(s.Read16())
	loaded.SetDE(s.Read16())
	loaded.SetHL(s.Read16())
	loaded.ime = s.ReadBool()
	loaded.halted = s.ReadBool()
	loaded.stopped = s.ReadBool()
	loaded.cycles = s.Read64()
	s.ReadData(loaded.mem[:])

	if s.Err() == nil {
		c.LoadFrom(loaded)
	}
}
