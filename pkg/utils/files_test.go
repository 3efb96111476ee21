package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

var romData = []byte{0x00, 0xC3, 0x50, 0x01, 0xCE, 0xED, 0x66, 0x66}

func TestLoadFile_Plain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gb")
	require.NoError(t, os.WriteFile(path, romData, 0644))

	data, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, romData, data)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.gb"))
	assert.Error(t, err)
}

func TestDecompress(t *testing.T) {
	t.Run("gz", func(t *testing.T) {
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		_, err := w.Write(romData)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := Decompress(".gz", buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, romData, data)
	})
	t.Run("xz", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := xz.NewWriter(&buf)
		require.NoError(t, err)
		_, err = w.Write(romData)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := Decompress(".xz", buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, romData, data)
	})
	t.Run("zip", func(t *testing.T) {
		var buf bytes.Buffer
		w := zip.NewWriter(&buf)
		f, err := w.Create("test.gb")
		require.NoError(t, err)
		_, err = f.Write(romData)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		data, err := Decompress(".ZIP", buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, romData, data)
	})
	t.Run("empty zip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, zip.NewWriter(&buf).Close())

		_, err := Decompress(".zip", buf.Bytes())
		assert.Error(t, err)
	})
	t.Run("unknown extension", func(t *testing.T) {
		data, err := Decompress(".gbc", romData)
		require.NoError(t, err)
		assert.Equal(t, romData, data)
	})
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(0, -5, 0xFFFF))
	assert.Equal(t, 0xFFFF, Clamp(0, 0x12345, 0xFFFF))
	assert.Equal(t, 0x1234, Clamp(0, 0x1234, 0xFFFF))
}

func TestBits(t *testing.T) {
	assert.Equal(t, uint8(0b1000_0001), SetBit(0b0000_0001, 7))
	assert.Equal(t, uint8(0b0000_0001), ClearBit(0b1000_0001, 7))
	assert.True(t, TestBit(0b0001_0000, 4))
	assert.False(t, TestBit(0b0001_0000, 3))
}
