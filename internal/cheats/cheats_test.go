package cheats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode_GameGenie(t *testing.T) {
	c, err := ParseCode("3AA-17B-E6A")
	require.NoError(t, err)

	assert.Equal(t, GameGenie, c.Kind)
	assert.Equal(t, uint8(0x3A), c.NewData)
	assert.Equal(t, uint16(0x4A17), c.Address)
	assert.True(t, c.Compare)
	assert.Equal(t, uint8(0x00), c.OldData)
	assert.Equal(t, "3AA-17B-E6A", c.String())

	c, err = ParseCode("3AA-17B")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x4A17), c.Address)
	assert.False(t, c.Compare)
}

func TestParseCode_GameShark(t *testing.T) {
	c, err := ParseCode("010238CD")
	require.NoError(t, err)

	assert.Equal(t, GameShark, c.Kind)
	assert.Equal(t, uint8(0x01), c.Bank)
	assert.Equal(t, uint8(0x02), c.NewData)
	assert.Equal(t, uint16(0xCD38), c.Address)
}

func TestParseCode_Invalid(t *testing.T) {
	for _, code := range []string{
		"",
		"3AA17BE6A",   // no hyphens
		"ZZA-17B-E6A", // not hex
		"3AA-170-E6A", // address 0xFA17
		"01020040",    // GameShark into the ROM
		"0102GGCD",
	} {
		_, err := ParseCode(code)
		assert.Error(t, err, code)
	}
}

func TestCode_Patch(t *testing.T) {
	rom := make([]byte, 0x8000)

	c, _ := ParseCode("3AA-17B-E6A")
	assert.True(t, c.Patch(rom))
	assert.Equal(t, uint8(0x3A), rom[0x4A17])

	// the old data no longer matches
	c.NewData = 0x99
	assert.False(t, c.Patch(rom))
	assert.Equal(t, uint8(0x3A), rom[0x4A17])

	assert.False(t, c.Patch(make([]byte, 0x4000)))

	shark, _ := ParseCode("010238CD")
	assert.False(t, shark.Patch(rom))
}

func TestParse(t *testing.T) {
	const file = `# Infinite Lives
3AA-17B-E6A

010238CD
# Moon Jump
3AA-17B
`
	cheats, err := Parse(strings.NewReader(file))
	require.NoError(t, err)
	require.Len(t, cheats, 2)

	assert.Equal(t, "Infinite Lives", cheats[0].Name)
	assert.Len(t, cheats[0].Codes, 2)
	assert.Equal(t, "Moon Jump", cheats[1].Name)
	assert.Len(t, cheats[1].Codes, 1)

	var out bytes.Buffer
	require.NoError(t, Write(&out, cheats))
	assert.Equal(t, strings.Replace(file, "\n\n", "\n", 1), out.String())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("3AA-17B-E6A\n"))
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("# Broken\nnope\n"))
	assert.ErrorContains(t, err, "line 2")
}
