package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeCB_RotateShift(t *testing.T) {
	tests := []struct {
		name    string
		op      uint8 // operates on B
		value   uint8
		carryIn bool
		want    uint8
		carry   bool
	}{
		{"RLC", 0x00, 0x85, false, 0x0B, true},
		{"RRC", 0x08, 0x01, false, 0x80, true},
		{"RL", 0x10, 0x80, false, 0x00, true},
		{"RL carry in", 0x10, 0x11, true, 0x23, false},
		{"RR", 0x18, 0x01, false, 0x00, true},
		{"RR carry in", 0x18, 0x8A, true, 0xC5, false},
		{"SLA", 0x20, 0xFF, false, 0xFE, true},
		{"SRA", 0x28, 0x81, false, 0xC0, true},
		{"SRA positive", 0x28, 0x02, true, 0x01, false},
		{"SWAP", 0x30, 0xF1, true, 0x1F, false},
		{"SRL", 0x38, 0x81, false, 0x40, true},
		{"SRL zero", 0x38, 0x01, false, 0x00, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(OpPrefixCB, tt.op)
			c.B = tt.value
			c.F = FlagSubtract | FlagHalfCarry
			c.SetFlagTo(FlagCarry, tt.carryIn)

			step(t, c, 1)
			if c.B != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, c.B)
			}
			assert.Equal(t, tt.want == 0, c.Flag(FlagZero), "zero")
			assert.False(t, c.Flag(FlagSubtract), "subtract")
			assert.False(t, c.Flag(FlagHalfCarry), "half carry")
			assert.Equal(t, tt.carry, c.Flag(FlagCarry), "carry")
			assert.Equal(t, uint16(programStart+2), c.PC)
		})
	}
}

// The prefixed rotates compute zero from the result, unlike RLCA.
func TestDecodeCB_RotateZero(t *testing.T) {
	c := newTestCPU(OpPrefixCB, 0x07, OpRlca)
	c.A = 0x00

	step(t, c, 1)
	assert.True(t, c.Flag(FlagZero), "RLC A")

	step(t, c, 1)
	assert.False(t, c.Flag(FlagZero), "RLCA")
}

func TestDecodeCB_Bit(t *testing.T) {
	for bit := uint8(0); bit < 8; bit++ {
		for r := RegB; r <= RegA; r++ {
			c := newTestCPU(OpPrefixCB, 0x40|bit<<3|uint8(r))
			c.SetHL(0xD000)
			c.set(r, ^(1 << bit))
			c.F = FlagSubtract | FlagCarry

			step(t, c, 1)
			if !c.Flag(FlagZero) {
				t.Errorf("BIT %d,%s: expected zero flag for cleared bit", bit, r)
			}
			if c.F != FlagZero|FlagHalfCarry|FlagCarry {
				t.Errorf("BIT %d,%s: expected F 0xB0, got 0x%02X", bit, r, c.F)
			}
			if c.get(r) != ^(1 << bit) {
				t.Errorf("BIT %d,%s: operand modified", bit, r)
			}

			c.PC = programStart
			c.set(r, 1<<bit)
			step(t, c, 1)
			if c.Flag(FlagZero) {
				t.Errorf("BIT %d,%s: unexpected zero flag for set bit", bit, r)
			}
		}
	}
}

func TestDecodeCB_ResSet(t *testing.T) {
	c := newTestCPU(OpPrefixCB, 0x86, OpPrefixCB, 0xFE, OpPrefixCB, 0xC7, OpPrefixCB, 0xBF)
	c.SetHL(0xD000)
	c.SetMem(0xD000, 0x0F)
	c.A = 0x80
	c.F = 0xF0

	step(t, c, 2) // RES 0,(HL); SET 7,(HL)
	assert.Equal(t, uint8(0x8E), c.Read(0xD000))

	step(t, c, 2) // SET 0,A; RES 7,A
	assert.Equal(t, uint8(0x01), c.A)
	assert.Equal(t, uint8(0xF0), c.F, "flags changed")
}

func TestDecodeCB_AllDefined(t *testing.T) {
	for op := 0; op <= 0xFF; op++ {
		c := newTestCPU(OpPrefixCB, uint8(op))
		c.SetHL(0xD000)
		if err := c.Tick(); err != nil {
			t.Fatalf("0xCB 0x%02X: unexpected error %v", op, err)
		}
		if c.PC != programStart+2 {
			t.Errorf("0xCB 0x%02X: expected PC 0x%04X, got 0x%04X", op, programStart+2, c.PC)
		}
	}
}
