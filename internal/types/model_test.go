package types

import "testing"

func TestStringToModel(t *testing.T) {
	tests := map[string]Model{
		"dmg":  DMGABC,
		"CGB":  CGBABC,
		"mgb":  MGB,
		"sgb2": SGB2,
		"nes":  Unset,
	}
	for in, want := range tests {
		if got := StringToModel(in); got != want {
			t.Errorf("StringToModel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestModel_Accumulator(t *testing.T) {
	tests := []struct {
		model Model
		want  uint8
	}{
		{Unset, 0x01},
		{DMGABC, 0x01},
		{SGB, 0x01},
		{MGB, 0xFF},
		{CGBABC, 0x11},
	}
	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			if got := tt.model.Accumulator(); got != tt.want {
				t.Errorf("expected 0x%02X, got 0x%02X", tt.want, got)
			}
		})
	}
}
