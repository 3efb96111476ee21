package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/go-dmg/internal/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "goboy.yaml")
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	return filename
}

func TestParse_Flags(t *testing.T) {
	cfg, err := Parse("goboy", []string{"-rom", "game.gb", "-model", "mgb", "-debug", "-strict=false", "-trace", "-", "-cheats", "game.cht"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "game.gb", cfg.ROM)
	assert.Equal(t, types.MGB, cfg.HardwareModel())
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "-", cfg.Trace)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "game.cht", cfg.Cheats)
}

func TestParse_Positional(t *testing.T) {
	cfg, err := Parse("goboy", []string{"game.gb"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "game.gb", cfg.ROM)
	assert.Equal(t, types.Unset, cfg.HardwareModel())
}

func TestParse_ConfigFile(t *testing.T) {
	filename := writeConfig(t, `
rom: file.gb
boot: dmg_boot.bin
model: sgb
log-level: debug
breakpoints: [0x100, 0x150]
`)

	cfg, err := Parse("goboy", []string{"-config", filename, "-model", "dmg"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "file.gb", cfg.ROM)
	assert.Equal(t, "dmg_boot.bin", cfg.Boot)
	// flags override the file
	assert.Equal(t, types.DMGABC, cfg.HardwareModel())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []uint16{0x100, 0x150}, cfg.Breakpoints)
	assert.True(t, cfg.Strict)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(writeConfig(t, "unknown: true\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := Parse("goboy", []string{"-model", "nes", "-log-level", "loud"}, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rom file given")
	assert.Contains(t, err.Error(), `unknown model "nes"`)
	assert.Contains(t, err.Error(), "loud")

	_, err = Parse("goboy", []string{"-undefined-flag"}, io.Discard)
	assert.Error(t, err)
}
