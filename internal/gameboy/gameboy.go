// Package gameboy wires a cartridge, an optional boot ROM and the CPU
// together, and drives execution.
package gameboy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/hashicorp/go-multierror"
	"github.com/thelolagemann/go-dmg/internal/boot"
	"github.com/thelolagemann/go-dmg/internal/cartridge"
	"github.com/thelolagemann/go-dmg/internal/cheats"
	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/disasm"
	"github.com/thelolagemann/go-dmg/internal/serial"
	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrBreakpoint is returned by Run when the program counter
	// reaches a breakpoint.
	ErrBreakpoint = errors.New("gameboy: breakpoint")
	// ErrHalted is returned by Run when the CPU enters HALT or STOP.
	// Nothing raises interrupts, so it would never wake.
	ErrHalted = errors.New("gameboy: cpu halted")
)

// bootLY is reported by LY while the boot ROM runs, so that its
// wait for v-blank completes.
const bootLY = 0x90

// GameBoy represents a Game Boy. It is the main entry point for
// the emulator.
type GameBoy struct {
	CPU    *cpu.CPU
	Serial *serial.Controller

	log.Logger

	cart    *cartridge.Cartridge
	boot    *boot.ROM
	booting bool

	model       types.Model
	breakpoints map[uint16]struct{}
	trace       io.Writer
	cheats      []cheats.Cheat
	shark       []cheats.Code

	// set by options, consumed by NewGameBoy
	bootROM []byte
	state   []byte
	cpuOpts []cpu.Option
}

// NewGameBoy returns a new GameBoy, powered on and ready to Step.
func NewGameBoy(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Serial:      serial.NewController(),
		Logger:      log.NewNullLogger(),
		breakpoints: make(map[uint16]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	rom = g.applyCheats(rom)
	cart, err := cartridge.NewCartridge(rom)
	if err != nil {
		return nil, err
	}
	g.cart = cart

	if g.bootROM != nil {
		if g.boot, err = boot.LoadBootROM(g.bootROM); err != nil {
			return nil, err
		}
		g.Infof("boot rom: %s (%s)", g.boot.Name(), g.boot.Checksum())
	}
	if g.model == types.Unset {
		g.model = g.boot.Model()
	}
	if g.model == types.Unset {
		g.model = types.DMGABC
	}

	g.CPU = cpu.New(append(g.cpuOpts, cpu.WithLogger(g.Logger), cpu.WithModel(g.model))...)
	g.powerOn()

	header := cart.Header()
	g.Infof("cartridge: %s", header.String())
	g.Infof("fingerprint: %016x model: %s", cart.Fingerprint(), g.model)
	if err := header.Validate(); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, e := range merr.Errors {
				g.Errorf("cartridge: %v", e)
			}
		}
	}

	if g.state != nil {
		if err := g.LoadState(g.state); err != nil {
			return nil, err
		}
		g.state = nil
	}

	return g, nil
}

// powerOn maps the cartridge into memory and puts the CPU in the
// state it would be in on entry to the cartridge, or to the boot ROM
// if one is attached.
func (g *GameBoy) powerOn() {
	for _, r := range g.cart.Regions() {
		g.CPU.SetMemRange(r.Begin, r.End, r.Data)
	}

	if g.boot != nil {
		g.booting = true
		g.CPU.SetMemRange(0x0000, boot.Size-1, g.boot.Bytes())
		g.CPU.SetMem(types.LY, bootLY)
		return
	}

	g.CPU.Init()
	for addr, value := range types.PowerOnIO {
		g.CPU.SetMem(addr, value)
	}
}

// applyCheats patches a copy of rom with the Game Genie codes and
// collects the GameShark codes.
func (g *GameBoy) applyCheats(rom []byte) []byte {
	if len(g.cheats) == 0 {
		return rom
	}

	patched := make([]byte, len(rom))
	copy(patched, rom)
	for _, cheat := range g.cheats {
		for _, code := range cheat.Codes {
			switch code.Kind {
			case cheats.GameGenie:
				if !code.Patch(patched) {
					g.Errorf("cheat %s: %s did not apply", cheat.Name, code)
					continue
				}
			case cheats.GameShark:
				g.shark = append(g.shark, code)
			}
			g.Infof("cheat %s: %s code %s", cheat.Name, code.Kind, code)
		}
	}
	return patched
}

// Cartridge returns the inserted cartridge.
func (g *GameBoy) Cartridge() *cartridge.Cartridge {
	return g.cart
}

// Model returns the model being emulated.
func (g *GameBoy) Model() types.Model {
	return g.model
}

// Booting reports whether the boot ROM is still mapped.
func (g *GameBoy) Booting() bool {
	return g.booting
}

// Step executes a single instruction.
func (g *GameBoy) Step() error {
	if g.trace != nil && !g.CPU.Halted() && !g.CPU.Stopped() {
		if err := disasm.Trace(g.trace, g.CPU); err != nil {
			return err
		}
	}
	if err := g.CPU.Tick(); err != nil {
		return err
	}

	g.Serial.Poll(g.CPU)
	for _, code := range g.shark {
		g.CPU.SetMem(code.Address, code.NewData)
	}

	if g.booting && g.CPU.Read(types.BDIS) != 0 {
		g.CPU.SetMemRange(0x0000, boot.Size-1, g.cart.Interrupts())
		g.booting = false
		g.Infof("boot rom finished after %d cycles", g.CPU.Cycles())
	}

	return nil
}

// Run steps until ctx is done, a breakpoint is reached, the CPU
// halts or an instruction fails. A breakpoint at the current program
// counter is stepped over, so that Run can continue from it.
func (g *GameBoy) Run(ctx context.Context) error {
	for first := true; ; first = false {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if g.CPU.Halted() || g.CPU.Stopped() {
			return fmt.Errorf("%w at 0x%04X", ErrHalted, g.CPU.PC)
		}
		if _, ok := g.breakpoints[g.CPU.PC]; ok && !first {
			return fmt.Errorf("%w at 0x%04X", ErrBreakpoint, g.CPU.PC)
		}

		if err := g.Step(); err != nil {
			return err
		}
	}
}

// ToggleBreakpoint adds a breakpoint at address, or removes it if it
// is already set. It reports whether the breakpoint is now set.
func (g *GameBoy) ToggleBreakpoint(address uint16) bool {
	if _, ok := g.breakpoints[address]; ok {
		delete(g.breakpoints, address)
		return false
	}
	g.breakpoints[address] = struct{}{}
	return true
}

// Breakpoints returns the breakpoints in ascending order.
func (g *GameBoy) Breakpoints() []uint16 {
	b := maps.Keys(g.breakpoints)
	slices.Sort(b)
	return b
}

// Snapshot is an in memory copy of the machine, used to step
// backwards.
type Snapshot struct {
	cpu     *cpu.CPU
	booting bool
}

// Snapshot copies the current state.
func (g *GameBoy) Snapshot() *Snapshot {
	return &Snapshot{cpu: g.CPU.Clone(), booting: g.booting}
}

// Restore returns to a state taken by Snapshot.
func (g *GameBoy) Restore(s *Snapshot) {
	g.CPU.LoadFrom(s.cpu)
	g.booting = s.booting
}

var _ types.Stater = (*GameBoy)(nil)

// Save writes the cartridge fingerprint, the boot state and the CPU.
func (g *GameBoy) Save(s *types.State) {
	s.Write64(g.cart.Fingerprint())
	s.WriteBool(g.booting)
	g.CPU.Save(s)
}

// Load restores the state written by Save. A state saved from a
// different cartridge is loaded, with a warning.
func (g *GameBoy) Load(s *types.State) {
	if fingerprint := s.Read64(); fingerprint != g.cart.Fingerprint() {
		g.Errorf("state was saved from a different cartridge (%016x)", fingerprint)
	}
	booting := s.ReadBool()
	g.CPU.Load(s)
	if s.Err() == nil {
		g.booting = booting
	}
}

// SaveState returns the brotli compressed state of the machine.
func (g *GameBoy) SaveState() ([]byte, error) {
	s := types.NewState()
	g.Save(s)

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.BestCompression)
	if _, err := w.Write(s.Bytes()); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// LoadState restores a state returned by SaveState.
func (g *GameBoy) LoadState(b []byte) error {
	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
	if err != nil {
		return fmt.Errorf("gameboy: decompressing state: %w", err)
	}

	s := types.StateFromBytes(raw)
	g.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("gameboy: loading state: %w", err)
	}
	return nil
}
