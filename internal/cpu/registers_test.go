package cpu

import (
	"testing"

	"github.com/thelolagemann/go-dmg/pkg/utils"
)

func TestRegisters_Pairs(t *testing.T) {
	pairs := []struct {
		name      string
		set       func(r *Registers, v uint16)
		get       func(r *Registers) uint16
		high, low func(r *Registers) uint8
	}{
		{"AF", (*Registers).SetAF, (*Registers).AF, func(r *Registers) uint8 { return r.A }, func(r *Registers) uint8 { return r.F }},
		{"BC", (*Registers).SetBC, (*Registers).BC, func(r *Registers) uint8 { return r.B }, func(r *Registers) uint8 { return r.C }},
		{"DE", (*Registers).SetDE, (*Registers).DE, func(r *Registers) uint8 { return r.D }, func(r *Registers) uint8 { return r.E }},
		{"HL", (*Registers).SetHL, (*Registers).HL, func(r *Registers) uint8 { return r.H }, func(r *Registers) uint8 { return r.L }},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			r := &Registers{}
			for high := 0; high <= 0xFF; high++ {
				for low := 0; low <= 0xFF; low++ {
					v := utils.JoinBytes(uint8(high), uint8(low))
					p.set(r, v)
					if got := p.get(r); got != v {
						t.Fatalf("expected 0x%04X, got 0x%04X", v, got)
					}
					if p.high(r) != uint8(high) || p.low(r) != uint8(low) {
						t.Fatalf("expected high 0x%02X low 0x%02X, got 0x%02X 0x%02X", high, low, p.high(r), p.low(r))
					}
				}
			}
		})
	}
}

func TestRegisters_PairsDoNotAlias(t *testing.T) {
	r := &Registers{}
	r.SetAF(0x1111)
	r.SetBC(0x2222)
	r.SetDE(0x3333)
	r.SetHL(0x4444)

	if r.AF() != 0x1111 || r.BC() != 0x2222 || r.DE() != 0x3333 || r.HL() != 0x4444 {
		t.Errorf("register pairs alias each other: AF=%04X BC=%04X DE=%04X HL=%04X", r.AF(), r.BC(), r.DE(), r.HL())
	}
}

func TestRegister_Operand(t *testing.T) {
	c := newTestCPU()

	for _, r := range []Register{RegB, RegC, RegD, RegE, RegH, RegL, RegA} {
		t.Run(r.String(), func(t *testing.T) {
			c.set(r, 0x80|uint8(r))
			if got := c.get(r); got != 0x80|uint8(r) {
				t.Errorf("expected 0x%02X, got 0x%02X", 0x80|uint8(r), got)
			}
		})
	}

	t.Run("(HL)", func(t *testing.T) {
		c.SetHL(0xD000)
		c.set(RegMemHL, 0x86)
		if got := c.Read(0xD000); got != 0x86 {
			t.Errorf("expected (HL) to write memory, got 0x%02X", got)
		}
		if got := c.get(RegMemHL); got != 0x86 {
			t.Errorf("expected 0x86, got 0x%02X", got)
		}
	})
}

func TestPair_Operand(t *testing.T) {
	tests := []struct {
		instr uint8
		pair  Pair
		stack Pair
	}{
		{OpPopBC, PairBC, PairBC},
		{OpPopDE, PairDE, PairDE},
		{OpPopHL, PairHL, PairHL},
		{OpPopAF, PairSP, PairAF},
	}
	for _, tt := range tests {
		if got := pairOperand(tt.instr); got != tt.pair {
			t.Errorf("pairOperand(0x%02X): expected %s, got %s", tt.instr, tt.pair, got)
		}
		if got := stackOperand(tt.instr); got != tt.stack {
			t.Errorf("stackOperand(0x%02X): expected %s, got %s", tt.instr, tt.stack, got)
		}
	}
}
