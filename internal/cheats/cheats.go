// Package cheats parses Game Genie and GameShark codes.
//
// A Game Genie code patches the ROM: reads of its address return the new
// data, optionally only if the ROM holds the old data. A GameShark code
// writes its data to RAM continuously.
package cheats

import (
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strconv"
	"strings"
)

// Kind is the device a code is written for.
type Kind int

const (
	GameGenie Kind = iota
	GameShark
)

func (k Kind) String() string {
	if k == GameShark {
		return "GameShark"
	}
	return "Game Genie"
}

// Code is a single parsed code.
type Code struct {
	Kind    Kind
	Address uint16
	NewData uint8

	// Game Genie only. Compare is false for six digit codes,
	// which patch regardless of the old data.
	OldData uint8
	Compare bool

	// GameShark only. The external RAM bank is not used, as
	// RAM is not banked.
	Bank uint8

	raw string
}

func (c Code) String() string {
	return c.raw
}

// Cheat is a named group of codes.
type Cheat struct {
	Name  string
	Codes []Code
}

// ParseCode parses a Game Genie code (ABC-DEF or ABC-DEF-GHI) or a
// GameShark code (ABCDEFGH).
func ParseCode(code string) (Code, error) {
	switch len(code) {
	case 7, 11:
		return parseGameGenie(code)
	case 8:
		return parseGameShark(code)
	}
	return Code{}, fmt.Errorf("cheats: invalid code %q", code)
}

// parseGameGenie decodes ABC-DEF-GHI. AB is the new data, FCDE is the
// address XORed by 0xF000 and GI is the old data XORed by 0xBA and
// rotated left by 2. H is unused.
func parseGameGenie(code string) (Code, error) {
	c := Code{Kind: GameGenie, raw: code}
	if code[3] != '-' || (len(code) == 11 && code[7] != '-') {
		return c, fmt.Errorf("cheats: invalid Game Genie code %q", code)
	}
	digits := strings.ReplaceAll(code, "-", "")

	newData, err := strconv.ParseUint(digits[0:2], 16, 8)
	if err != nil {
		return c, fmt.Errorf("cheats: invalid Game Genie code %q: %w", code, err)
	}
	// reorganize CDEF to FCDE
	address, err := strconv.ParseUint(digits[5:6]+digits[2:5], 16, 16)
	if err != nil {
		return c, fmt.Errorf("cheats: invalid Game Genie code %q: %w", code, err)
	}
	c.NewData = uint8(newData)
	c.Address = uint16(address) ^ 0xF000

	if len(digits) == 9 {
		oldData, err := strconv.ParseUint(digits[6:7]+digits[8:9], 16, 8)
		if err != nil {
			return c, fmt.Errorf("cheats: invalid Game Genie code %q: %w", code, err)
		}
		c.OldData = bits.RotateLeft8(uint8(oldData), -2) ^ 0xBA
		c.Compare = true
	}
	if c.Address >= 0x8000 {
		return c, fmt.Errorf("cheats: Game Genie code %q patches 0x%04X, outside the ROM", code, c.Address)
	}

	return c, nil
}

// parseGameShark decodes ABCDEFGH. AB is the external RAM bank, CD is
// the new data and GHEF is the address.
func parseGameShark(code string) (Code, error) {
	c := Code{Kind: GameShark, raw: code}
	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return c, fmt.Errorf("cheats: invalid GameShark code %q: %w", code, err)
	}

	c.Bank = uint8(v >> 24)
	c.NewData = uint8(v >> 16)
	c.Address = bits.ReverseBytes16(uint16(v))
	if c.Address < 0x8000 {
		return c, fmt.Errorf("cheats: GameShark code %q writes 0x%04X, inside the ROM", code, c.Address)
	}
	return c, nil
}

// Patch applies a Game Genie code to rom, reporting whether it applied.
func (c Code) Patch(rom []byte) bool {
	if c.Kind != GameGenie || int(c.Address) >= len(rom) {
		return false
	}
	if c.Compare && rom[c.Address] != c.OldData {
		return false
	}
	rom[c.Address] = c.NewData
	return true
}

// Parse reads a cheat file. The file format is as follows:
//
//	# Cheat Name
//	ABC-DEF-GHI
//	ABCDEFGH
//
// Any number of codes of either kind may follow a name. Blank lines
// are ignored.
func Parse(r io.Reader) ([]Cheat, error) {
	scanner := bufio.NewScanner(r)

	var cheats []Cheat
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// once we have a name, we can start parsing codes
		if line[0] == '#' {
			cheats = append(cheats, Cheat{Name: strings.TrimSpace(line[1:])})
			continue
		}
		if len(cheats) == 0 {
			return nil, fmt.Errorf("cheats: line %d: code before a name", n)
		}

		code, err := ParseCode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		current := &cheats[len(cheats)-1]
		current.Codes = append(current.Codes, code)
	}

	return cheats, scanner.Err()
}

// LoadFile parses the cheat file filename.
func LoadFile(filename string) ([]Cheat, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Write writes cheats in the format read by Parse.
func Write(w io.Writer, cheats []Cheat) error {
	for _, c := range cheats {
		if _, err := fmt.Fprintf(w, "# %s\n", c.Name); err != nil {
			return err
		}
		for _, code := range c.Codes {
			if _, err := fmt.Fprintf(w, "%s\n", code); err != nil {
				return err
			}
		}
	}
	return nil
}
