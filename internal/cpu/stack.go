package cpu

import "github.com/thelolagemann/go-dmg/pkg/utils"

// Push writes data to the stack so that its last byte lands at
// the current SP, then moves SP below the first byte.
//
//	SP = $FFFE, Push($FF, $EE, $CC)
//	$FFFC = $FF, $FFFD = $EE, $FFFE = $CC, SP = $FFFB
func (c *CPU) Push(data ...uint8) {
	n := uint16(len(data))
	for i, b := range data {
		c.mem.Write(c.SP-n+1+uint16(i), b)
	}
	c.SP -= n
}

// Pop reads n bytes starting just above SP, in ascending address
// order, and moves SP past them. Pop is the inverse of Push.
func (c *CPU) Pop(n int) []uint8 {
	data := make([]uint8, n)
	for i := range data {
		data[i] = c.mem.Read(c.SP + 1 + uint16(i))
	}
	c.SP += uint16(n)
	return data
}

// Push16 pushes a 16-bit value onto the stack, high byte at the
// higher address.
func (c *CPU) Push16(value uint16) {
	high, low := utils.SplitUint16(value)
	c.Push(low, high)
}

// Pop16 pops a 16-bit value pushed by Push16.
func (c *CPU) Pop16() uint16 {
	data := c.Pop(2)
	return utils.JoinBytes(data[1], data[0])
}
