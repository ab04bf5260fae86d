package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oaskit/model"
)

// decodeJSON decodes JSON text into raw model values. Object member order
// is preserved and numbers are kept as json.Number literals.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid character after top-level value at offset %d", dec.InputOffset())
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		m := model.NewMap[any]()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			m.Set(key, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return m, nil
	case '[':
		items := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			items = append(items, val)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	}
	return nil, fmt.Errorf("unexpected delimiter %q", delim)
}

// jsonWriter encodes raw model values as indented JSON with object members
// in insertion order. HTML characters are not escaped.
type jsonWriter struct {
	buf     *bytes.Buffer
	indent  string
	scratch bytes.Buffer
	enc     *json.Encoder
}

func newJSONWriter(buf *bytes.Buffer, indent string) *jsonWriter {
	w := &jsonWriter{buf: buf, indent: indent}
	w.enc = json.NewEncoder(&w.scratch)
	w.enc.SetEscapeHTML(false)
	return w
}

func (w *jsonWriter) write(v any, depth int) error {
	switch val := v.(type) {
	case nil:
		w.buf.WriteString("null")
	case bool:
		if val {
			w.buf.WriteString("true")
		} else {
			w.buf.WriteString("false")
		}
	case json.Number:
		if !isJSONNumber(val.String()) {
			return fmt.Errorf("invalid number literal %q", val)
		}
		w.buf.WriteString(val.String())
	case int:
		w.buf.WriteString(intNumber(val).String())
	case float64:
		w.buf.WriteString(floatNumber(val).String())
	case string:
		return w.writeString(val)
	case []any:
		if len(val) == 0 {
			w.buf.WriteString("[]")
			return nil
		}
		w.buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			w.newline(depth + 1)
			if err := w.write(item, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte(']')
	case *model.Map[any]:
		if val.Len() == 0 {
			w.buf.WriteString("{}")
			return nil
		}
		w.buf.WriteByte('{')
		i := 0
		for k, item := range val.All() {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			i++
			w.newline(depth + 1)
			if err := w.writeString(k); err != nil {
				return err
			}
			w.buf.WriteByte(':')
			if w.indent != "" {
				w.buf.WriteByte(' ')
			}
			if err := w.write(item, depth+1); err != nil {
				return err
			}
		}
		w.newline(depth)
		w.buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %T as JSON", v)
	}
	return nil
}

func (w *jsonWriter) writeString(s string) error {
	w.scratch.Reset()
	if err := w.enc.Encode(s); err != nil {
		return err
	}
	w.buf.Write(bytes.TrimSuffix(w.scratch.Bytes(), []byte("\n")))
	return nil
}

func (w *jsonWriter) newline(depth int) {
	if w.indent == "" {
		return
	}
	w.buf.WriteByte('\n')
	w.buf.WriteString(strings.Repeat(w.indent, depth))
}

// encodeJSON returns the JSON text of a raw model value.
func encodeJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := newJSONWriter(&buf, indent).write(v, 0); err != nil {
		return nil, err
	}
	if indent != "" {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
