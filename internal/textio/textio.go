// Package textio reads corpus source files into memory, transparently
// decompressing xz and gzip inputs selected by file extension.
package textio

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/nlptk/nlptk/core/errors"
)

// ReadFile reads path to completion and returns its bytes. Files ending
// in .xz or .gz are decompressed on the way in; any other file is
// returned verbatim. The content itself is never inspected or validated.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		xzReader, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		r = xzReader
	case ".gz":
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.NewIO("decompress", path, err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}
