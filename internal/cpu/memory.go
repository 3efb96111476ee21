package cpu

import "fmt"

// MemorySize is the size of the address space of the CPU.
const MemorySize = 0x10000

// Memory is the flat 64KB address space of the CPU. Hardware
// registers in the upper page are plain bytes here; giving them
// behaviour is left to the host.
type Memory [MemorySize]uint8

// Read returns the byte at address.
func (m *Memory) Read(address uint16) uint8 {
	return m[address]
}

// Write stores value at address.
func (m *Memory) Write(address uint16, value uint8) {
	m[address] = value
}

// ReadRange returns a copy of the bytes from i to j inclusive.
// It panics if the range is invalid.
func (m *Memory) ReadRange(i, j int) []uint8 {
	checkRange(i, j)
	data := make([]uint8, j-i+1)
	copy(data, m[i:j+1])
	return data
}

// WriteRange copies data into the bytes from i to j inclusive.
// It panics if the range is invalid or data does not fill it
// exactly.
func (m *Memory) WriteRange(i, j int, data []uint8) {
	checkRange(i, j)
	if len(data) != j-i+1 {
		panic(fmt.Sprintf("memory: range 0x%04X-0x%04X holds %d bytes, got %d", i, j, j-i+1, len(data)))
	}
	copy(m[i:j+1], data)
}

func checkRange(i, j int) {
	if i < 0 || j >= MemorySize || i > j {
		panic(fmt.Sprintf("memory: invalid range 0x%04X-0x%04X", i, j))
	}
}

// Read returns the byte at address. It never has side effects,
// which makes it safe for the disassembler and debugger to use.
func (c *CPU) Read(address uint16) uint8 {
	return c.mem.Read(address)
}

// SetMem stores value at address.
func (c *CPU) SetMem(address uint16, value uint8) {
	c.mem.Write(address, value)
}

// GetMemRange returns a copy of memory from i to j inclusive.
func (c *CPU) GetMemRange(i, j int) []uint8 {
	return c.mem.ReadRange(i, j)
}

// SetMemRange copies data into memory from i to j inclusive.
func (c *CPU) SetMemRange(i, j int, data []uint8) {
	c.mem.WriteRange(i, j, data)
}
