// Package zwrap looks at the bytes of a file and, if they are gzip
// compressed, inflates them. We decide by the magic number and never
// by the file name, so lig.pdb may well be compressed.

package zwrap

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip says if data starts with the gzip magic number
func IsGzip(data []byte) bool { return bytes.HasPrefix(data, gzipMagic) }

// Inflate returns data unchanged if it is not compressed. Otherwise it
// returns the decompressed contents. The result never shares memory
// with data when data was compressed, but does when it was not.
func Inflate(data []byte) ([]byte, error) {
	if !IsGzip(data) {
		return data, nil
	}
	zrdr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip header: %w", err)
	}
	var s string
	out, err := io.ReadAll(zrdr)
	if err != nil {
		s = err.Error()
	}
	if e := zrdr.Close(); e != nil {
		s = s + " " + e.Error()
	}
	if s != "" {
		return nil, fmt.Errorf("decompressing: %s", s)
	}
	return out, nil
}
