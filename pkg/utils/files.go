package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/ulikunitz/xz"
)

// LoadFile loads the given file and performs decompression if necessary.
// Plain ROM images (.gb, .gbc, .bin or no extension) are returned as-is,
// while .gz, .xz, .zip and .7z archives are decompressed, taking the
// first file of multi-file archives.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the archive format implied by
// the given file extension. Unknown extensions return the data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	var err error

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".zip":
		var zipReader *zip.Reader
		zipReader, err = zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("utils: empty zip archive")
		}

		// read the first file in the zip file
		decoder, err = zipReader.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("utils: empty 7z archive")
		}

		// read the first file in the archive
		decoder, err = r.File[0].Open()
	default:
		// .gb, .gbc, boot roms and anything else
		return data, nil
	}

	if err != nil {
		return nil, err
	}
	if closer, ok := decoder.(io.Closer); ok {
		defer closer.Close()
	}

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}
