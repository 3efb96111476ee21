// Package boot identifies and serves boot ROMs. A boot ROM is optional:
// without one the host starts the CPU at 0x0100 with the register values
// the boot ROM would have left behind.
package boot

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/thelolagemann/go-dmg/internal/types"
)

// Size is the size of a DMG, MGB or SGB boot ROM.
const Size = 0x100

// ROM is a boot ROM, mapped over 0x0000-0x00FF at power on until the
// program writes to types.BDIS.
type ROM struct {
	raw      []byte // the raw boot rom
	checksum string // the MD5 checksum of the boot rom
}

// LoadBootROM checks the length of b and computes its checksum. Colour
// boot ROMs are rejected, as they depend on hardware not emulated here.
func LoadBootROM(b []byte) (*ROM, error) {
	if len(b) != Size {
		return nil, fmt.Errorf("boot: invalid boot rom length: %d, expected %d", len(b), Size)
	}

	bootChecksum := md5.Sum(b)
	return &ROM{
		raw:      b,
		checksum: hex.EncodeToString(bootChecksum[:]),
	}, nil
}

// Bytes returns the boot ROM.
func (b *ROM) Bytes() []byte {
	return b.raw
}

// Checksum returns the MD5 checksum of the boot rom.
func (b *ROM) Checksum() string {
	if b == nil {
		return ""
	}
	return b.checksum
}

// Name returns the name of the hardware the boot ROM was dumped from.
func (b *ROM) Name() string {
	if b == nil {
		return "none"
	}
	if known, ok := knownBootROMs[b.checksum]; ok {
		return known.name
	}
	return "unknown"
}

// Model returns the hardware model the boot ROM belongs to, or
// types.Unset if the checksum is not recognised.
func (b *ROM) Model() types.Model {
	if b == nil {
		return types.Unset
	}
	return knownBootROMs[b.checksum].model
}

type knownBootROM struct {
	name  string
	model types.Model
}

// knownBootROMs maps the checksums of known boot ROMs to the
// hardware they were dumped from.
var knownBootROMs = map[string]knownBootROM{
	DMG0:         {"Game Boy (DMG-0)", types.DMG0},
	DMG:          {"Game Boy (DMG-01)", types.DMGABC},
	MGB:          {"Game Boy Pocket", types.MGB},
	SGB:          {"Super Game Boy", types.SGB},
	SGB2:         {"Super Game Boy 2", types.SGB2},
	FORTUNE:      {"Fortune/Bitman 3000B", types.DMGABC},
	GAME_FIGHTER: {"Game Fighter", types.DMGABC},
	MAX_STATION:  {"Max Station", types.DMGABC},
}

const (
	// DMG0 is the early DMG boot ROM, only sold in Japan. It flashes
	// the screen on a boot failure rather than hanging.
	DMG0 = "a8f84a0ac44da5d3f0ee19f9cea80a8c"
	// DMG is the boot ROM of the DMG-01.
	DMG = "32fbbd84168d3482956eb3c5051637f5"
	// MGB differs from DMG by a single byte, loading 0xFF into A.
	MGB = "71a378e71ff30b2d8a1f02bf5c7896aa"
	// SGB sends the cartridge header to the SNES instead of
	// scrolling the logo.
	SGB = "d574d4f9c12f305074798f54c091a8b4"
	// SGB2 differs from SGB by a single byte, loading 0xFF into A.
	SGB2 = "e0430bca9925fb9882148fd2dc2418c1"
	// FORTUNE is found in the Fortune/Bitman 3000B clone.
	FORTUNE = "92ed4eca17d61fcd53f8a64c3ce84743"
	// GAME_FIGHTER is found in the Game Fighter clone.
	GAME_FIGHTER = "6a7b8ee12a793f66a969c6a2b8926cc9"
	// MAX_STATION is found in the Maxstation clone.
	MAX_STATION = "77a7021db824010a678791f6d062943d"
)
