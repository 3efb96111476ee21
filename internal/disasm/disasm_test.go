package disasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/go-dmg/internal/cpu"
)

// memory is a plain Reader for tests.
type memory map[uint16]uint8

func (m memory) Read(address uint16) uint8 { return m[address] }

func load(address uint16, program ...uint8) memory {
	m := memory{}
	for i, b := range program {
		m[address+uint16(i)] = b
	}
	return m
}

func TestInstruction(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		address uint16
		text    string
		length  int
	}{
		{"NOP", []uint8{0x00}, 0x0100, "NOP", 1},
		{"LD BC,d16", []uint8{0x01, 0x34, 0x12}, 0x0100, "LD BC,$1234", 3},
		{"LD B,d8", []uint8{0x06, 0x42}, 0x0100, "LD B,$42", 2},
		{"JP a16", []uint8{0xC3, 0x50, 0x01}, 0x0100, "JP $0150", 3},
		{"CALL cc", []uint8{0xC4, 0x24, 0x35}, 0x0100, "CALL NZ,$3524", 3},
		{"LDH", []uint8{0xE0, 0x44}, 0x0100, "LDH ($44),A", 2},
		{"JR forward", []uint8{0x18, 0x0F}, 0x0000, "JR $0011", 2},
		{"JR backward", []uint8{0x18, 0xF1}, 0xFFEE, "JR $FFE1", 2},
		{"JR cc", []uint8{0x20, 0xFE}, 0x0150, "JR NZ,$0150", 2},
		{"ADD SP", []uint8{0xE8, 0xFE}, 0x0100, "ADD SP,-$02", 2},
		{"LD HL,SP+", []uint8{0xF8, 0x05}, 0x0100, "LD HL,SP+$05", 2},
		{"LD HL,SP-", []uint8{0xF8, 0x80}, 0x0100, "LD HL,SP-$80", 2},
		{"STOP", []uint8{0x10, 0x00}, 0x0100, "STOP", 2},
		{"RLC B", []uint8{0xCB, 0x00}, 0x0100, "RLC B", 2},
		{"SWAP (HL)", []uint8{0xCB, 0x36}, 0x0100, "SWAP (HL)", 2},
		{"BIT", []uint8{0xCB, 0x7C}, 0x0100, "BIT 7,H", 2},
		{"RES", []uint8{0xCB, 0x87}, 0x0100, "RES 0,A", 2},
		{"SET", []uint8{0xCB, 0xFE}, 0x0100, "SET 7,(HL)", 2},
		{"undefined", []uint8{0xD3}, 0x0100, "DB $D3", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Instruction(load(tt.address, tt.program...), tt.address)
			assert.Equal(t, tt.text, d.Text)
			assert.Equal(t, tt.length, d.Length)
			assert.Equal(t, tt.program[:tt.length], d.Bytes)
			assert.Equal(t, tt.name == "undefined", d.Undefined)
		})
	}
}

func TestInstruction_AllOpcodes(t *testing.T) {
	for op := 0; op <= 0xFF; op++ {
		d := Instruction(load(0x0100, uint8(op), 0x00, 0x00), 0x0100)
		if d.Text == "" {
			t.Errorf("0x%02X: empty text", op)
		}
		if d.Length < 1 || d.Length > 3 {
			t.Errorf("0x%02X: invalid length %d", op, d.Length)
		}
	}
}

func TestListing(t *testing.T) {
	mem := load(0x0100, 0x00, 0xC3, 0x50, 0x01, 0xCB, 0x11)
	listing := Listing(mem, 0x0100, 3)

	assert.Len(t, listing, 3)
	assert.Equal(t, uint16(0x0100), listing[0].Address)
	assert.Equal(t, uint16(0x0101), listing[1].Address)
	assert.Equal(t, uint16(0x0104), listing[2].Address)
	assert.Equal(t, "RL C", listing[2].Text)
	assert.Equal(t, "0101  C3 50 01  JP $0150", listing[1].String())
}

func TestTrace(t *testing.T) {
	c := cpu.New()
	c.Init()
	c.SetMemRange(0x0100, 0x0103, []uint8{0x00, 0xC3, 0x50, 0x01})
	before := c.Clone()

	var buf bytes.Buffer
	assert.NoError(t, Trace(&buf, c))
	assert.Equal(t, "0100  00        NOP               A:01 F:B0 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE\n", buf.String())
	assert.Equal(t, before, c, "Trace mutated the CPU")
}
