package gameboy

import (
	"io"

	"github.com/thelolagemann/go-dmg/internal/cheats"
	"github.com/thelolagemann/go-dmg/internal/cpu"
	"github.com/thelolagemann/go-dmg/internal/serial"
	"github.com/thelolagemann/go-dmg/internal/types"
	"github.com/thelolagemann/go-dmg/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance before it is powered on.
type Opt func(gb *GameBoy)

// WithLogger sets the logger used by the GameBoy and its CPU.
func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		gb.Logger = log
	}
}

// WithBootROM sets the boot ROM for the emulator. If we have a
// boot ROM, the CPU starts zeroed at 0x0000, otherwise the emulator
// will start at 0x100 with the registers set to the values upon
// completion of the boot ROM.
func WithBootROM(rom []byte) Opt {
	return func(gb *GameBoy) {
		gb.bootROM = rom
	}
}

// AsModel sets the hardware model. When unset, the model is taken
// from the boot ROM if it is recognised, or defaults to DMG.
func AsModel(m types.Model) Opt {
	return func(gb *GameBoy) {
		gb.model = m
	}
}

// Trace writes a line to w for every instruction executed.
func Trace(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.trace = w
	}
}

// TolerateUndefined executes undefined opcodes as no-ops.
func TolerateUndefined() Opt {
	return func(gb *GameBoy) {
		gb.cpuOpts = append(gb.cpuOpts, cpu.TolerateUndefined())
	}
}

// WithBreakpoints sets the addresses Run stops at.
func WithBreakpoints(addresses ...uint16) Opt {
	return func(gb *GameBoy) {
		for _, a := range addresses {
			gb.breakpoints[a] = struct{}{}
		}
	}
}

// WithState resumes from a state produced by SaveState.
func WithState(b []byte) Opt {
	return func(gb *GameBoy) {
		gb.state = b
	}
}

// WithCheats enables cheats. Game Genie codes patch the ROM before it
// is mapped, GameShark codes are written after every instruction.
func WithCheats(c ...cheats.Cheat) Opt {
	return func(gb *GameBoy) {
		gb.cheats = append(gb.cheats, c...)
	}
}

// SerialOutput writes every byte sent over the serial port to w.
func SerialOutput(w io.Writer) Opt {
	return func(gb *GameBoy) {
		gb.Serial.Attach(serial.Writer{Writer: w})
	}
}
