package codec

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaskit/internal/issues"
	"github.com/erraggy/oaskit/model"
	"github.com/erraggy/oaskit/oaserrors"
)

// Writer encodes documents as JSON or YAML text in one dialect. A Writer
// is safe for concurrent use.
type Writer struct {
	format Format
	cfg    *config
}

// Output is the encoded text of a document.
type Output struct {
	// Data is the encoded document.
	Data []byte
	// Version is the openapi field that was written.
	Version string
	// Dialect is the dialect the document was written in.
	Dialect Dialect
	// Warnings lists the lossy steps of a conversion to an older dialect.
	Warnings []Warning
}

// NewWriter returns a Writer for format.
func NewWriter(format Format, opts ...Option) (*Writer, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("codec: unsupported output format %s", format)
	}
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid options: %w", err)
	}
	return &Writer{format: format, cfg: cfg}, nil
}

// Format returns the output format.
func (w *Writer) Format() Format {
	return w.format
}

// target returns the version and dialect a document is written with.
func (w *Writer) target(doc *model.OpenAPI) (string, Dialect) {
	if w.cfg.version != "" {
		return w.cfg.version, w.cfg.dialect
	}
	own := DialectFor(doc.OpenAPI)
	switch {
	case w.cfg.dialect == DialectAuto && doc.OpenAPI != "":
		return doc.OpenAPI, own
	case w.cfg.dialect == DialectAuto:
		return Version31, Dialect31
	case doc.OpenAPI != "" && own == w.cfg.dialect:
		return doc.OpenAPI, own
	}
	return w.cfg.dialect.DefaultVersion(), w.cfg.dialect
}

// Write encodes doc. doc is not modified. In strict mode a lossy write
// returns the Output together with a *oaserrors.ConversionError.
func (w *Writer) Write(doc *model.OpenAPI) (*Output, error) {
	if doc == nil {
		return nil, fmt.Errorf("codec: document is nil")
	}
	source := doc.OpenAPI
	version, dialect := w.target(doc)
	if version != doc.OpenAPI {
		c := *doc
		c.OpenAPI = version
		doc = &c
	}

	out := &Output{Version: version, Dialect: dialect}
	var err error
	switch w.format {
	case FormatJSON:
		mio := newModelIO[any](ValueAdapter{}, dialect)
		out.Data, err = encodeJSON(mio.writeDocument(doc), strings.Repeat(" ", w.cfg.indent))
		out.Warnings = mio.warnings
	default:
		mio := newModelIO(Adapter[*yaml.Node](NewNodeAdapter(false)), dialect)
		out.Data, err = encodeYAML(mio.writeDocument(doc), w.cfg.indent)
		out.Warnings = mio.warnings
	}
	if err != nil {
		return nil, fmt.Errorf("codec: failed to encode %s: %w", w.format, err)
	}
	w.cfg.logger.Debug("wrote document",
		"format", w.format.String(),
		"version", version,
		"bytes", len(out.Data),
		"warnings", len(out.Warnings),
	)
	if w.cfg.strict {
		if err := lossy(source, version, out.Warnings); err != nil {
			return out, err
		}
	}
	return out, nil
}

// WriteTo encodes doc to dst.
func (w *Writer) WriteTo(dst io.Writer, doc *model.OpenAPI) (*Output, error) {
	out, err := w.Write(doc)
	if err != nil {
		return out, err
	}
	if _, err := dst.Write(out.Data); err != nil {
		return nil, fmt.Errorf("codec: failed to write output: %w", err)
	}
	return out, nil
}

// Value returns the document as a raw model value tree in dialect d, the
// same tree the JSON encoder writes. Validators and tests inspect it.
func Value(doc *model.OpenAPI, d Dialect) (any, []Warning) {
	if d == DialectAuto {
		d = DialectFor(doc.OpenAPI)
	}
	mio := newModelIO[any](ValueAdapter{}, d)
	return mio.writeDocument(doc), mio.warnings
}

func encodeYAML(n *yaml.Node, indent int) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(max(indent, 2))
	if err := enc.Encode(n); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Marshal encodes doc with default options in its own dialect.
func Marshal(doc *model.OpenAPI, format Format) ([]byte, error) {
	w, err := NewWriter(format)
	if err != nil {
		return nil, err
	}
	out, err := w.Write(doc)
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Unmarshal decodes data with default options.
func Unmarshal(data []byte, format Format) (*model.OpenAPI, error) {
	r, err := NewReader()
	if err != nil {
		return nil, err
	}
	res, err := r.Read(data, format)
	if err != nil {
		return nil, err
	}
	return res.Document, nil
}

// lossy reports the first warning that changed the document, if any.
func lossy(source, target string, warnings []Warning) error {
	var first *Warning
	count := 0
	for i := range warnings {
		if warnings[i].Severity > issues.SeverityWarning {
			continue
		}
		if first == nil {
			first = &warnings[i]
		}
		count++
	}
	if first == nil {
		return nil
	}
	return &oaserrors.ConversionError{
		SourceVersion: source,
		TargetVersion: target,
		Path:          first.Path,
		Message:       fmt.Sprintf("%s (%d lossy step(s) in strict mode)", first.Message, count),
	}
}
