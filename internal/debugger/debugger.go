// Package debugger implements a line based debugger. Each line read
// is a command; a line that is not a command steps the CPU.
package debugger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/thelolagemann/go-dmg/internal/disasm"
	"github.com/thelolagemann/go-dmg/internal/gameboy"
	"github.com/thelolagemann/go-dmg/pkg/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrQuit is returned by Tick when the user quits.
var ErrQuit = errors.New("debugger: quit")

// listingLength is the number of instructions shown by "i".
const listingLength = 8

type command struct {
	usage       string
	description string
	run         func(d *Debugger, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"s":    {"s", "print memory, the range <from> <to> is read from the next line", (*Debugger).printMemory},
		"cpu":  {"cpu", "print the cpu state", (*Debugger).printCPU},
		"p":    {"p", "go back to the state before the last step", (*Debugger).backtrack},
		"b":    {"b <addr>", "toggle a breakpoint", (*Debugger).breakpoint},
		"c":    {"c", "continue until a breakpoint", (*Debugger).cont},
		"i":    {"i [addr]", "disassemble from addr, or the program counter", (*Debugger).disassemble},
		"save": {"save <file>", "save a snapshot", (*Debugger).save},
		"load": {"load <file>", "load a snapshot", (*Debugger).load},
		"q":    {"q", "quit", func(*Debugger, []string) error { return ErrQuit }},
		"h":    {"h", "show this help", (*Debugger).help},
	}
}

// Debugger drives a GameBoy from commands read line by line.
type Debugger struct {
	gb  *gameboy.GameBoy
	in  *bufio.Reader
	out io.Writer
	ctx context.Context

	previous *gameboy.Snapshot
}

// New returns a Debugger reading commands from in and writing to out.
func New(gb *gameboy.GameBoy, in io.Reader, out io.Writer) *Debugger {
	return &Debugger{
		gb:       gb,
		in:       bufio.NewReader(in),
		out:      out,
		ctx:      context.Background(),
		previous: gb.Snapshot(),
	}
}

// Run processes commands until the input ends, the user quits or the
// CPU fails. Quitting and the end of input are not errors.
func (d *Debugger) Run(ctx context.Context) error {
	d.ctx = ctx
	for {
		if err := d.Tick(); err != nil {
			if errors.Is(err, ErrQuit) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// Tick reads and executes a single command. Errors in a command's
// arguments are reported to the output; errors from the CPU and the
// end of input are returned.
func (d *Debugger) Tick() error {
	line, err := d.readLine()
	if err != nil {
		return err
	}

	args := strings.Fields(line)
	if len(args) > 0 {
		if cmd, ok := commands[args[0]]; ok {
			return cmd.run(d, args[1:])
		}
	}

	if d.gb.CPU.Halted() || d.gb.CPU.Stopped() {
		d.printf("%v at 0x%04X\n", gameboy.ErrHalted, d.gb.CPU.PC)
		return nil
	}

	d.previous = d.gb.Snapshot()
	return d.gb.Step()
}

// readLine returns the next line of input. A final line without a
// newline is still returned.
func (d *Debugger) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (d *Debugger) printf(format string, args ...interface{}) {
	fmt.Fprintf(d.out, format, args...)
}

func (d *Debugger) printMemory([]string) error {
	line, err := d.readLine()
	if err != nil {
		return err
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		d.printf("expected <from> <to>, got %q\n", line)
		return nil
	}
	from, err := parseAddress(fields[0])
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}
	to, err := parseAddress(fields[1])
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}
	if from > to {
		d.printf("invalid range 0x%04X-0x%04X\n", from, to)
		return nil
	}

	for i, b := range d.gb.CPU.GetMemRange(from, to) {
		d.printf("0x%04X: %02X\n", from+i, b)
	}
	return nil
}

func (d *Debugger) printCPU([]string) error {
	d.printf("%s\n%s\n", d.gb.CPU, disasm.Instruction(d.gb.CPU, d.gb.CPU.PC))
	return nil
}

func (d *Debugger) backtrack([]string) error {
	d.gb.Restore(d.previous)
	return d.printCPU(nil)
}

func (d *Debugger) breakpoint(args []string) error {
	if len(args) != 1 {
		d.printf("usage: %s\n", commands["b"].usage)
		return nil
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}

	if d.gb.ToggleBreakpoint(uint16(addr)) {
		d.printf("breakpoint set at 0x%04X\n", addr)
	} else {
		d.printf("breakpoint cleared at 0x%04X\n", addr)
	}
	return nil
}

func (d *Debugger) cont([]string) error {
	d.previous = d.gb.Snapshot()
	err := d.gb.Run(d.ctx)
	if errors.Is(err, gameboy.ErrBreakpoint) || errors.Is(err, gameboy.ErrHalted) {
		d.printf("%v\n", err)
		return d.printCPU(nil)
	}
	return err
}

func (d *Debugger) disassemble(args []string) error {
	addr := int(d.gb.CPU.PC)
	if len(args) > 0 {
		var err error
		if addr, err = parseAddress(args[0]); err != nil {
			d.printf("%v\n", err)
			return nil
		}
	}

	for _, instr := range disasm.Listing(d.gb.CPU, uint16(addr), listingLength) {
		marker := " "
		if slices.Contains(d.gb.Breakpoints(), instr.Address) {
			marker = "*"
		}
		d.printf("%s %s\n", marker, instr)
	}
	return nil
}

func (d *Debugger) save(args []string) error {
	if len(args) != 1 {
		d.printf("usage: %s\n", commands["save"].usage)
		return nil
	}

	state, err := d.gb.SaveState()
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[0], state, 0o644); err != nil {
		d.printf("%v\n", err)
		return nil
	}
	d.printf("saved %s\n", args[0])
	return nil
}

func (d *Debugger) load(args []string) error {
	if len(args) != 1 {
		d.printf("usage: %s\n", commands["load"].usage)
		return nil
	}

	state, err := os.ReadFile(args[0])
	if err == nil {
		d.previous = d.gb.Snapshot()
		err = d.gb.LoadState(state)
	}
	if err != nil {
		d.printf("%v\n", err)
		return nil
	}
	return d.printCPU(nil)
}

func (d *Debugger) help([]string) error {
	names := maps.Keys(commands)
	slices.Sort(names)
	for _, name := range names {
		d.printf("%-12s %s\n", commands[name].usage, commands[name].description)
	}
	d.printf("%-12s %s\n", "<enter>", "step one instruction")
	return nil
}

// parseAddress parses a decimal or 0x prefixed hexadecimal address,
// clamped to the address space. Leading zeros are decimal.
func parseAddress(s string) (int, error) {
	var n uint64
	var err error
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		n, err = strconv.ParseUint(s[2:], 16, 64)
	} else {
		n, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}
	return int(utils.Clamp[uint64](0x0000, n, 0xFFFF)), nil
}
