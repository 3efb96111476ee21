package boot

import (
	"crypto/md5"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/go-dmg/internal/types"
)

func TestLoadBootROM(t *testing.T) {
	raw := make([]byte, Size)
	raw[0] = 0x31 // LD SP, d16

	rom, err := LoadBootROM(raw)
	require.NoError(t, err)

	sum := md5.Sum(raw)
	assert.Equal(t, hex.EncodeToString(sum[:]), rom.Checksum())
	assert.Equal(t, "unknown", rom.Name())
	assert.Equal(t, types.Unset, rom.Model())
	assert.Equal(t, uint8(0x31), rom.Bytes()[0])
}

func TestLoadBootROM_InvalidLength(t *testing.T) {
	for _, n := range []int{0, 0xFF, 0x101, 2304} {
		_, err := LoadBootROM(make([]byte, n))
		assert.Error(t, err, "length %d", n)
	}
}

func TestROM_Nil(t *testing.T) {
	var rom *ROM
	assert.Equal(t, "", rom.Checksum())
	assert.Equal(t, "none", rom.Name())
	assert.Equal(t, types.Unset, rom.Model())
}

func TestROM_Known(t *testing.T) {
	rom := &ROM{checksum: MGB}
	assert.Equal(t, "Game Boy Pocket", rom.Name())
	assert.Equal(t, types.MGB, rom.Model())
}
