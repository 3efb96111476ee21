package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	c := New()
	c.SP = 0xFFFE
	c.Push(0xFF, 0xEE, 0xCC)

	assert.Equal(t, uint8(0xCC), c.Read(0xFFFE))
	assert.Equal(t, uint8(0xEE), c.Read(0xFFFD))
	assert.Equal(t, uint8(0xFF), c.Read(0xFFFC))
	assert.Equal(t, uint16(0xFFFB), c.SP)

	assert.Equal(t, []uint8{0xFF, 0xEE, 0xCC}, c.Pop(3))
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestStack_Push16(t *testing.T) {
	c := New()
	c.SP = 0x1234
	c.Push16(0xFFEE)

	// little-endian, high byte at the higher address
	assert.Equal(t, uint8(0xFF), c.Read(0x1234))
	assert.Equal(t, uint8(0xEE), c.Read(0x1233))
	assert.Equal(t, uint16(0x1232), c.SP)

	assert.Equal(t, uint16(0xFFEE), c.Pop16())
	assert.Equal(t, uint16(0x1234), c.SP)
}

func TestStack_RoundTrip(t *testing.T) {
	for _, sp := range []uint16{0xFFFE, 0xD000, 0x0001, 0x8000} {
		c := New()
		c.SP = sp
		for v := 0; v <= 0xFFFF; v += 0x0101 {
			c.Push16(uint16(v))
			if got := c.Pop16(); got != uint16(v) {
				t.Fatalf("SP 0x%04X: expected 0x%04X, got 0x%04X", sp, v, got)
			}
			if c.SP != sp {
				t.Fatalf("expected SP 0x%04X, got 0x%04X", sp, c.SP)
			}
		}
	}
}

func TestStack_Sequence(t *testing.T) {
	c := New()
	c.SP = 0xFFFE
	values := []uint16{0x0001, 0xBEEF, 0x1234, 0xFF00}
	for _, v := range values {
		c.Push16(v)
	}
	for i := len(values) - 1; i >= 0; i-- {
		if got := c.Pop16(); got != values[i] {
			t.Errorf("expected 0x%04X, got 0x%04X", values[i], got)
		}
	}
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestStack_Wrap(t *testing.T) {
	c := New()
	c.SP = 0x0000
	c.Push16(0xABCD)

	assert.Equal(t, uint8(0xAB), c.Read(0x0000))
	assert.Equal(t, uint8(0xCD), c.Read(0xFFFF))
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0xABCD), c.Pop16())
	assert.Equal(t, uint16(0x0000), c.SP)
}
