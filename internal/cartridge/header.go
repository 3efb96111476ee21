package cartridge

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Flag is the CGB flag of a cartridge, found at 0x0143.
type Flag uint8

const (
	FlagOnlyDMG Flag = iota
	FlagSupportsCGB
	FlagOnlyCGB
)

var (
	ramMAP = map[uint8]uint{
		0x00: 0,
		0x01: 2 * 1024,
		0x02: 8 * 1024,
		0x03: 32 * 1024,
		0x04: 128 * 1024,
		0x05: 64 * 1024,
	}

	// nintendoLogo is the bitmap the boot ROM compares against 0x0104-0x0133
	// before handing control to the cartridge.
	nintendoLogo = []byte{
		0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00, 0x0D,
		0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99,
		0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
	}
)

// Type is the memory bank controller and extra hardware of a
// cartridge, found at 0x0147. It is only used for classification;
// bank switching is not emulated.
type Type uint8

const (
	ROM                  Type = 0x00
	MBC1                 Type = 0x01
	MBC1RAM              Type = 0x02
	MBC1RAMBATT          Type = 0x03
	MBC2                 Type = 0x05
	MBC2BATT             Type = 0x06
	ROMRAM               Type = 0x08
	ROMRAMBATT           Type = 0x09
	MMM01                Type = 0x0B
	MMM01RAM             Type = 0x0C
	MMM01RAMBATT         Type = 0x0D
	MBC3TIMERBATT        Type = 0x0F
	MBC3TIMERRAMBATT     Type = 0x10
	MBC3                 Type = 0x11
	MBC3RAM              Type = 0x12
	MBC3RAMBATT          Type = 0x13
	MBC5                 Type = 0x19
	MBC5RAM              Type = 0x1A
	MBC5RAMBATT          Type = 0x1B
	MBC5RUMBLE           Type = 0x1C
	MBC5RUMBLERAM        Type = 0x1D
	MBC5RUMBLERAMBATT    Type = 0x1E
	MBC6                 Type = 0x20
	MBC7SENSORRUMBLEBATT Type = 0x22
	POCKETCAMERA         Type = 0xFC
	BANDAITAMA5          Type = 0xFD
	HUDSONHUC3           Type = 0xFE
	HUDSONHUC1           Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:                  "ROM ONLY",
	MBC1:                 "MBC1",
	MBC1RAM:              "MBC1+RAM",
	MBC1RAMBATT:          "MBC1+RAM+BATTERY",
	MBC2:                 "MBC2",
	MBC2BATT:             "MBC2+BATTERY",
	ROMRAM:               "ROM+RAM",
	ROMRAMBATT:           "ROM+RAM+BATTERY",
	MMM01:                "MMM01",
	MMM01RAM:             "MMM01+RAM",
	MMM01RAMBATT:         "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:        "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:     "MBC3+TIMER+RAM+BATTERY",
	MBC3:                 "MBC3",
	MBC3RAM:              "MBC3+RAM",
	MBC3RAMBATT:          "MBC3+RAM+BATTERY",
	MBC5:                 "MBC5",
	MBC5RAM:              "MBC5+RAM",
	MBC5RAMBATT:          "MBC5+RAM+BATTERY",
	MBC5RUMBLE:           "MBC5+RUMBLE",
	MBC5RUMBLERAM:        "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT:    "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:                 "MBC6",
	MBC7SENSORRUMBLEBATT: "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:         "POCKET CAMERA",
	BANDAITAMA5:          "BANDAI TAMA5",
	HUDSONHUC3:           "HuC3",
	HUDSONHUC1:           "HuC1+RAM+BATTERY",
}

// Known reports whether t is a documented cartridge type.
func (t Type) Known() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN (0x%02X)", uint8(t))
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on.
type Header struct {
	// 0x0134-0x0143 - Title of the game, padded with zeroes
	Title string

	// 0x013F-0x0142 - ManufacturerCode of the game
	ManufacturerCode string

	// 0x0143 - CartridgeGBMode of the game. In older cartridges this byte was part
	// of the title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CartridgeGBMode Flag

	// 0x0144-0x0145 - NewLicenseeCode of the game, used when OldLicenseeCode
	// is 0x33.
	NewLicenseeCode string
	// SGBFlag is set when the cartridge supports the Super Game Boy functions,
	// which requires 0x0146 to be 0x03 and the old licensee code to be 0x33.
	SGBFlag         bool
	CartridgeType   Type
	ROMSize         uint
	RAMSize         uint
	DestinationCode uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	raw [0x50]byte
}

// parseHeader parses the 0x50 bytes at 0x0100-0x014F.
func parseHeader(header []byte) Header {
	h := Header{}
	copy(h.raw[:], header)

	// parse the mode of the cartridge and parse the header accordingly
	switch header[0x43] {
	case 0x80:
		h.CartridgeGBMode = FlagSupportsCGB
	case 0xC0:
		h.CartridgeGBMode = FlagOnlyCGB
	default:
		h.CartridgeGBMode = FlagOnlyDMG
	}

	if h.CartridgeGBMode == FlagOnlyDMG {
		h.Title = string(header[0x34:0x44])
	} else {
		h.Title = string(header[0x34:0x43])
	}
	h.Title = strings.TrimRight(h.Title, "\x00")

	h.ManufacturerCode = string(header[0x3F:0x43])
	h.NewLicenseeCode = string(header[0x44:0x46])
	h.SGBFlag = header[0x46] == 0x03 && header[0x4B] == 0x33
	h.CartridgeType = Type(header[0x47])

	// calculated by 32kB << n
	h.ROMSize = (32 * 1024) << header[0x48]
	h.RAMSize = ramMAP[header[0x49]]

	h.DestinationCode = header[0x4A]
	h.OldLicenseeCode = header[0x4B]
	h.MaskROMVersion = header[0x4C]
	h.HeaderChecksum = header[0x4D]

	// the global checksum is stored big-endian
	h.GlobalChecksum = uint16(header[0x4E])<<8 | uint16(header[0x4F])

	return h
}

// computeHeaderChecksum computes the checksum of 0x0134-0x014C as the boot
// ROM does.
func (h *Header) computeHeaderChecksum() uint8 {
	var x uint8
	for _, b := range h.raw[0x34:0x4D] {
		x = x - b - 1
	}
	return x
}

// Validate checks the header the way the boot ROM and common emulators
// do, returning every problem found.
func (h *Header) Validate() error {
	var result *multierror.Error

	if sum := h.computeHeaderChecksum(); sum != h.HeaderChecksum {
		result = multierror.Append(result, fmt.Errorf("header checksum mismatch: expected 0x%02X, got 0x%02X", sum, h.HeaderChecksum))
	}
	if !h.CartridgeType.Known() {
		result = multierror.Append(result, fmt.Errorf("unknown cartridge type 0x%02X", uint8(h.CartridgeType)))
	}
	if !bytes.Equal(h.raw[0x04:0x34], nintendoLogo) {
		result = multierror.Append(result, fmt.Errorf("nintendo logo mismatch"))
	}
	if h.raw[0x48] > 0x08 {
		result = multierror.Append(result, fmt.Errorf("invalid ROM size 0x%02X", h.raw[0x48]))
	}
	if _, ok := ramMAP[h.raw[0x49]]; !ok {
		result = multierror.Append(result, fmt.Errorf("invalid RAM size 0x%02X", h.raw[0x49]))
	}

	return result.ErrorOrNil()
}

// Japanese reports whether the cartridge was sold in Japan.
func (h *Header) Japanese() bool {
	return h.DestinationCode == 0x00
}

// GameboyColor reports whether the cartridge supports the Colour Game Boy.
func (h *Header) GameboyColor() bool {
	return h.CartridgeGBMode == FlagOnlyCGB || h.CartridgeGBMode == FlagSupportsCGB
}

func (h *Header) Hardware() string {
	switch h.CartridgeGBMode {
	case FlagOnlyDMG:
		return "DMG"
	case FlagSupportsCGB:
		return "CGB"
	case FlagOnlyCGB:
		return "CGB"
	default:
		return "Unknown"
	}
}

func (h *Header) String() string {
	return fmt.Sprintf("%s | %s | Mode: %s | ROM Size: %dkB | RAM Size: %dkB", h.Title, h.CartridgeType, h.Hardware(), h.ROMSize/1024, h.RAMSize/1024)
}
