package serial

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thelolagemann/go-dmg/internal/types"
)

type memory map[uint16]uint8

func (m memory) Read(address uint16) uint8          { return m[address] }
func (m memory) SetMem(address uint16, value uint8) { m[address] = value }

func TestController_Poll(t *testing.T) {
	var out bytes.Buffer
	c := NewController()
	c.Attach(Writer{&out})

	mem := memory{types.SB: 'P', types.SC: 0x81, types.IF: 0xE0}
	assert.True(t, c.Poll(mem))
	assert.Equal(t, "P", out.String())
	assert.Equal(t, uint8(0xFF), mem[types.SB])
	assert.Equal(t, uint8(0x01), mem[types.SC])
	assert.Equal(t, uint8(0xE8), mem[types.IF])

	// nothing further until the next request
	assert.False(t, c.Poll(mem))
	assert.Equal(t, "P", out.String())
}

func TestController_ExternalClock(t *testing.T) {
	c := NewController()
	mem := memory{types.SB: 0x42, types.SC: 0x80}
	assert.False(t, c.Poll(mem))
	assert.Equal(t, uint8(0x42), mem[types.SB])
	assert.Equal(t, uint8(0x80), mem[types.SC])
}

func TestController_NoDevice(t *testing.T) {
	c := NewController()
	mem := memory{types.SB: 0x42, types.SC: 0x81}
	assert.True(t, c.Poll(mem))
	assert.Equal(t, uint8(0xFF), mem[types.SB])
}
