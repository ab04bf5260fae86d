package loader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/erraggy/oaskit/codec"
)

// StandardFileNames are the file names Discover looks for, in order.
var StandardFileNames = []string{"openapi.yaml", "openapi.yml", "openapi.json"}

// Source is one static OpenAPI input.
type Source struct {
	// Locator identifies the source in errors, logs and locator filters,
	// typically a file path or URL.
	Locator string
	// Format is the declared format. FormatUnknown detects it from the
	// locator's extension, then the content.
	Format codec.Format
	// Open returns the content. The loader closes it.
	Open func() (io.ReadCloser, error)
}

// FileSource returns a source reading the file at path.
func FileSource(path string) Source {
	return Source{
		Locator: path,
		Format:  codec.ParseFormat(filepath.Ext(path)),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path) //nolint:gosec // path is caller provided
		},
	}
}

// BytesSource returns a source serving data from memory.
func BytesSource(name string, data []byte, format codec.Format) Source {
	return Source{
		Locator: name,
		Format:  format,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Discover returns a FileSource for each standard file name present in
// dir, in StandardFileNames order.
func Discover(dir string) []Source {
	var sources []Source
	for _, name := range StandardFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			sources = append(sources, FileSource(path))
		}
	}
	return sources
}
