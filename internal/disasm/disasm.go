// Package disasm formats instructions for tracing and debugging. It only
// ever reads memory.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/pkg/utils"
)

// Reader is the read-only view of memory the disassembler needs.
// *cpu.CPU satisfies it.
type Reader interface {
	Read(address uint16) uint8
}

// Decoded is a single disassembled instruction.
type Decoded struct {
	Address   uint16
	Text      string
	Length    int
	Bytes     []uint8
	Undefined bool
}

func (d Decoded) String() string {
	return fmt.Sprintf("%04X  %-8s  %s", d.Address, hexBytes(d.Bytes), d.Text)
}

var cbOperations = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// Instruction disassembles the instruction at address. Operands are
// rendered as $xx or $xxxx, and relative jumps show their absolute
// target.
func Instruction(mem Reader, address uint16) Decoded {
	op := mem.Read(address)
	d := Decoded{Address: address, Length: 1}

	switch {
	case op == cpu.OpPrefixCB:
		d.Length = 2
		d.Text = cbMnemonic(mem.Read(address + 1))
	case mnemonics[op] == "":
		d.Undefined = true
		d.Text = fmt.Sprintf("DB $%02X", op)
	case op == cpu.OpStop:
		d.Length = 2
		d.Text = "STOP"
	default:
		d.Text, d.Length = operands(mnemonics[op], mem, address)
	}

	d.Bytes = make([]uint8, d.Length)
	for i := range d.Bytes {
		d.Bytes[i] = mem.Read(address + uint16(i))
	}
	return d
}

// Listing disassembles n consecutive instructions starting at address.
func Listing(mem Reader, address uint16, n int) []Decoded {
	listing := make([]Decoded, 0, n)
	for i := 0; i < n; i++ {
		d := Instruction(mem, address)
		listing = append(listing, d)
		address += uint16(d.Length)
	}
	return listing
}

// operands substitutes the operand placeholder of a mnemonic with the
// bytes following the opcode, returning the text and the length of
// the instruction.
func operands(mnemonic string, mem Reader, address uint16) (string, int) {
	n8 := mem.Read(address + 1)
	n16 := utils.JoinBytes(mem.Read(address+2), n8)

	switch {
	case strings.Contains(mnemonic, "d16"):
		return strings.Replace(mnemonic, "d16", fmt.Sprintf("$%04X", n16), 1), 3
	case strings.Contains(mnemonic, "a16"):
		return strings.Replace(mnemonic, "a16", fmt.Sprintf("$%04X", n16), 1), 3
	case strings.Contains(mnemonic, "d8"):
		return strings.Replace(mnemonic, "d8", fmt.Sprintf("$%02X", n8), 1), 2
	case strings.Contains(mnemonic, "a8"):
		return strings.Replace(mnemonic, "a8", fmt.Sprintf("$%02X", n8), 1), 2
	case strings.Contains(mnemonic, "r8"):
		target := address + 2 + uint16(int8(n8))
		return strings.Replace(mnemonic, "r8", fmt.Sprintf("$%04X", target), 1), 2
	case strings.Contains(mnemonic, "+s8"):
		return strings.Replace(mnemonic, "+s8", signed(n8), 1), 2
	case strings.Contains(mnemonic, "s8"):
		return strings.Replace(mnemonic, "s8", strings.TrimPrefix(signed(n8), "+"), 1), 2
	}
	return mnemonic, 1
}

// signed renders a signed offset as +$xx or -$xx.
func signed(n uint8) string {
	if v := int8(n); v < 0 {
		return fmt.Sprintf("-$%02X", uint8(-int16(v)))
	}
	return fmt.Sprintf("+$%02X", n)
}

func cbMnemonic(op uint8) string {
	r := cpu.Register(op & 0x7)
	bit := op >> 3 & 0x7
	switch op >> 6 {
	case 0:
		return cbOperations[bit] + " " + r.String()
	case 1:
		return fmt.Sprintf("BIT %d,%s", bit, r)
	case 2:
		return fmt.Sprintf("RES %d,%s", bit, r)
	default:
		return fmt.Sprintf("SET %d,%s", bit, r)
	}
}

func hexBytes(b []uint8) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

// Trace writes one line describing the instruction at PC and the
// registers before it executes.
func Trace(w io.Writer, c *cpu.CPU) error {
	d := Instruction(c, c.PC)
	_, err := fmt.Fprintf(w, "%04X  %-8s  %-16s  A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X\n",
		d.Address, hexBytes(d.Bytes), d.Text, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	return err
}
