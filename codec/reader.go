package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

// Reader decodes OpenAPI 3.0 and 3.1 documents from JSON or YAML text.
// A Reader is safe for concurrent use.
type Reader struct {
	cfg *config
}

// Result is a decoded document with the facts learned while reading it.
type Result struct {
	// Document is the dialect-agnostic document.
	Document *model.OpenAPI
	// Version is the openapi field as written in the source.
	Version string
	// Dialect is the dialect the source was read with.
	Dialect Dialect
	// Format is the text format of the source.
	Format Format
	// SourcePath is the file path or locator, if known.
	SourcePath string
	// Warnings lists tolerated problems and dialect upgrades.
	Warnings []Warning
}

// NewReader returns a Reader.
func NewReader(opts ...Option) (*Reader, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	return &Reader{cfg: cfg}, nil
}

// MaxSize returns the configured maximum input size.
func (r *Reader) MaxSize() int64 {
	return r.cfg.maxSize
}

// Read decodes data. FormatUnknown detects the format from the content.
func (r *Reader) Read(data []byte, format Format) (*Result, error) {
	return r.read("", data, format)
}

// ReadFile reads and decodes the file at path. The format is detected from
// the extension, then the content.
func (r *Reader) ReadFile(path string) (*Result, error) {
	f, err := os.Open(path) //nolint:gosec // path is caller provided
	if err != nil {
		return nil, fmt.Errorf("codec: failed to open file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if info, err := f.Stat(); err == nil && info.Size() > r.cfg.maxSize {
		return nil, r.sizeError(path, info.Size())
	}
	return r.ReadFrom(path, f, FormatUnknown)
}

// ReadFrom reads at most the configured maximum size from rd and decodes
// it. name identifies the source in errors and format detection.
func (r *Reader) ReadFrom(name string, rd io.Reader, format Format) (*Result, error) {
	data, err := io.ReadAll(io.LimitReader(rd, r.cfg.maxSize+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: name, Message: "failed to read input", Cause: err}
	}
	if int64(len(data)) > r.cfg.maxSize {
		// The true size is unknown past the limit.
		return nil, r.sizeError(name, 0)
	}
	return r.read(name, data, format)
}

func (r *Reader) sizeError(path string, actual int64) error {
	return &oaserrors.ParseError{
		Path:    path,
		Message: "input exceeds the maximum size",
		Cause: &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        r.cfg.maxSize,
			Actual:       actual,
		},
	}
}

func (r *Reader) read(path string, data []byte, format Format) (*Result, error) {
	if int64(len(data)) > r.cfg.maxSize {
		return nil, r.sizeError(path, int64(len(data)))
	}
	if format == FormatUnknown {
		format = DetectFormat(path, data)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: path, Message: "empty document"}
	}

	var res *Result
	var err error
	switch format {
	case FormatJSON:
		res, err = r.readJSON(path, data)
	case FormatYAML:
		res, err = r.readYAML(path, data)
	default:
		return nil, &oaserrors.ParseError{Path: path, Message: "unknown format"}
	}
	if err != nil {
		return nil, err
	}
	res.Format = format
	res.SourcePath = path
	r.cfg.logger.Debug("read document",
		"path", path,
		"format", format.String(),
		"version", res.Version,
		"warnings", len(res.Warnings),
	)
	return res, nil
}

func (r *Reader) readJSON(path string, data []byte) (*Result, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		perr := &oaserrors.ParseError{Path: path, Message: "invalid JSON", Cause: err}
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			perr.Line, perr.Column = lineColumn(data, syntax.Offset)
		}
		return nil, perr
	}
	return decode[any](ValueAdapter{}, raw, path)
}

func (r *Reader) readYAML(path string, data []byte) (*Result, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid YAML", Cause: err}
	}
	if err := checkAliases(&root, r.cfg.maxAliasExpansion); err != nil {
		return nil, &oaserrors.ParseError{Path: path, Message: "invalid YAML aliases", Cause: err}
	}
	return decode(NewNodeAdapter(r.cfg.identicalAliases), &root, path)
}

// decode reads a document tree through any adapter.
func decode[V any](a Adapter[V], root V, path string) (*Result, error) {
	if k := a.Kind(root); k != KindObject {
		return nil, &oaserrors.ParseError{Path: path, Message: fmt.Sprintf("document must be an object, found %s", k)}
	}
	version, err := documentVersion(a, root, path)
	if err != nil {
		return nil, err
	}
	dialect := DialectFor(version)
	mio := newModelIO(a, dialect)
	if version == "" {
		mio.warn("", "openapi", "missing openapi field; reading as %s", Version31)
	}
	doc, ok := mio.readDocument(root)
	if !ok {
		return nil, &oaserrors.ParseError{Path: path, Message: "document could not be read"}
	}
	return &Result{
		Document: doc,
		Version:  version,
		Dialect:  dialect,
		Warnings: mio.warnings,
	}, nil
}

func documentVersion[V any](a Adapter[V], root V, path string) (string, error) {
	if _, ok := Lookup(a, root, "swagger"); ok {
		return "", &oaserrors.ParseError{Path: path, Message: "Swagger 2.0 documents are not supported"}
	}
	v, ok := Lookup(a, root, "openapi")
	if !ok {
		return "", nil
	}
	var version string
	switch a.Kind(v) {
	case KindString:
		version = a.String(v)
	case KindNumber:
		version = a.Number(v).String()
	}
	if !strings.HasPrefix(version, "3.0") && !strings.HasPrefix(version, "3.1") {
		return "", &oaserrors.ParseError{Path: path, Message: fmt.Sprintf("unsupported OpenAPI version %q", version)}
	}
	return version, nil
}

// lineColumn converts a byte offset to a 1-based line and column.
func lineColumn(data []byte, offset int64) (line, col int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	prefix := data[:offset]
	line = bytes.Count(prefix, []byte("\n")) + 1
	col = int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
