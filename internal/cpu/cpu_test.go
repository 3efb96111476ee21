package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/go-dmg/internal/types"
)

// programStart is where test programs are placed, away from the
// high page and the stack.
const programStart = 0xC000

// newTestCPU returns an initialised CPU with program loaded at
// programStart and PC pointing at it.
func newTestCPU(program ...uint8) *CPU {
	c := New()
	c.Init()
	c.PC = programStart
	if len(program) > 0 {
		c.SetMemRange(programStart, programStart+len(program)-1, program)
	}
	return c
}

// step ticks the CPU n times, failing the test on error.
func step(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, c.Tick())
	}
}

func TestCPU_New(t *testing.T) {
	c := New()
	if c.PC != 0 || c.SP != 0 || c.AF() != 0 || c.BC() != 0 || c.DE() != 0 || c.HL() != 0 {
		t.Errorf("expected zeroed registers, got\n%s", c)
	}
	for i, b := range c.GetMemRange(0, 0xFFFF) {
		if b != 0 {
			t.Fatalf("expected zeroed memory, got 0x%02X at 0x%04X", b, i)
		}
	}
}

func TestCPU_Init(t *testing.T) {
	c := New()
	c.Init()

	tests := []struct {
		name string
		got  uint16
		want uint16
	}{
		{"AF", c.AF(), 0x01B0},
		{"BC", c.BC(), 0x0013},
		{"DE", c.DE(), 0x00D8},
		{"HL", c.HL(), 0x014D},
		{"PC", c.PC, 0x0100},
		{"SP", c.SP, 0xFFFE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("expected 0x%04X, got 0x%04X", tt.want, tt.got)
			}
		})
	}
}

func TestCPU_InitModel(t *testing.T) {
	tests := []struct {
		model types.Model
		want  uint8
	}{
		{types.DMGABC, 0x01},
		{types.SGB, 0x01},
		{types.MGB, 0xFF},
		{types.CGBABC, 0x11},
	}
	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			c := New(WithModel(tt.model))
			c.Init()
			if c.A != tt.want {
				t.Errorf("expected A 0x%02X, got 0x%02X", tt.want, c.A)
			}
			if c.F != 0xB0 {
				t.Errorf("expected F 0xB0, got 0x%02X", c.F)
			}
		})
	}
}

func TestCPU_Clone(t *testing.T) {
	c := newTestCPU(OpIncA)
	c.SetMem(0xD000, 0x42)

	clone := c.Clone()
	assert.Equal(t, c, clone)

	step(t, clone, 1)
	clone.SetMem(0xD000, 0x24)

	assert.Equal(t, uint8(0x01), c.A, "original A changed")
	assert.Equal(t, uint16(programStart), c.PC, "original PC changed")
	assert.Equal(t, uint8(0x42), c.Read(0xD000), "original memory changed")
	assert.Equal(t, uint8(0x02), clone.A)
	assert.Equal(t, uint8(0x24), clone.Read(0xD000))
}

func TestCPU_LoadFrom(t *testing.T) {
	c := newTestCPU(OpIncA, OpIncA)
	before := c.Clone()

	step(t, c, 2)
	require.Equal(t, uint8(0x03), c.A)

	c.LoadFrom(before)
	assert.Equal(t, before, c)
	assert.Equal(t, uint8(0x01), c.A)
	assert.Equal(t, uint16(programStart), c.PC)
}

func TestCPU_SaveLoad(t *testing.T) {
	c := newTestCPU(OpEi, OpHalt)
	c.SetBC(0x1234)
	c.SetDE(0x5678)
	c.SetHL(0x9ABC)
	c.SetMem(0xFF80, 0x99)
	step(t, c, 2)

	s := types.NewState()
	c.Save(s)

	loaded := New()
	loaded.Load(types.StateFromBytes(s.Bytes()))

	assert.Equal(t, c.PC, loaded.PC)
	assert.Equal(t, c.SP, loaded.SP)
	assert.Equal(t, c.Registers, loaded.Registers)
	assert.True(t, loaded.IME())
	assert.True(t, loaded.Halted())
	assert.Equal(t, c.Cycles(), loaded.Cycles())
	assert.Equal(t, c.GetMemRange(0, 0xFFFF), loaded.GetMemRange(0, 0xFFFF))
}

func TestCPU_LoadTruncated(t *testing.T) {
	c := newTestCPU()
	before := c.Clone()

	s := types.StateFromBytes([]byte{0x00, 0x01, 0x02})
	c.Load(s)

	assert.Error(t, s.Err())
	assert.Equal(t, before, c)
}

func TestCPU_String(t *testing.T) {
	c := newTestCPU()
	out := c.String()
	assert.Contains(t, out, "A: 01  F: B0  (Z:1 N:0 H:1 C:1)")
	assert.Contains(t, out, "SP: FFFE  PC: C000")
}
