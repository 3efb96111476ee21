// Package cartridge parses game cartridges for the DMG. It only slices the
// ROM into the regions the CPU maps; memory bank controllers are classified
// but not emulated.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	interruptsBegin = 0x0000
	interruptsEnd   = 0x00FF
	headerBegin     = 0x0100
	headerEnd       = 0x014F
	bank0Begin      = 0x0150
	bank0End        = 0x3FFF
	bank1Begin      = 0x4000
	bank1End        = 0x7FFF

	// minimumSize is the size of a cartridge without any banks.
	minimumSize = 0x8000
)

// ErrNoHeader is returned for ROMs too short to hold a header.
var ErrNoHeader = errors.New("cartridge: ROM too short to contain a header")

// Cartridge represents a game cartridge.
type Cartridge struct {
	rom         []byte
	header      Header
	fingerprint uint64
}

// NewCartridge parses the header of rom. ROMs smaller than 32kB are zero
// padded, so that every region is always present.
func NewCartridge(rom []byte) (*Cartridge, error) {
	if len(rom) <= headerEnd {
		return nil, fmt.Errorf("%w: %d bytes", ErrNoHeader, len(rom))
	}

	c := &Cartridge{
		fingerprint: xxhash.Sum64(rom),
	}
	if len(rom) < minimumSize {
		padded := make([]byte, minimumSize)
		copy(padded, rom)
		rom = padded
	}
	c.rom = rom
	c.header = parseHeader(rom[headerBegin : headerEnd+1])

	return c, nil
}

// Header returns the parsed header.
func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the title of the cartridge.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Interrupts returns the restart and interrupt vectors, 0x0000-0x00FF.
func (c *Cartridge) Interrupts() []byte {
	return c.rom[interruptsBegin : interruptsEnd+1]
}

// HeaderBytes returns the raw header, 0x0100-0x014F.
func (c *Cartridge) HeaderBytes() []byte {
	return c.rom[headerBegin : headerEnd+1]
}

// Bank0 returns the rest of the fixed bank, 0x0150-0x3FFF.
func (c *Cartridge) Bank0() []byte {
	return c.rom[bank0Begin : bank0End+1]
}

// Bank1 returns the first switchable bank, 0x4000-0x7FFF.
func (c *Cartridge) Bank1() []byte {
	return c.rom[bank1Begin : bank1End+1]
}

// Fingerprint returns the xxhash of the ROM as loaded, before padding.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// Regions returns the regions of the cartridge mapped into memory, each
// with the address it starts at.
func (c *Cartridge) Regions() []Region {
	return []Region{
		{interruptsBegin, interruptsEnd, c.Interrupts()},
		{headerBegin, headerEnd, c.HeaderBytes()},
		{bank0Begin, bank0End, c.Bank0()},
		{bank1Begin, bank1End, c.Bank1()},
	}
}

// Region is a slice of the cartridge and the inclusive address range
// it occupies.
type Region struct {
	Begin, End int
	Data       []byte
}
