package params

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/jhaeger/go-params/internal/oracle"
)

// Encoder writes parameter blocks to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode appends the block encoding of v to the stream. v must be a named
// struct or a non-nil pointer to one.
//
// The whole tree is rendered into memory first; nothing reaches the stream
// if any part of v fails to encode.
func (e *Encoder) Encode(v any) error {
	o := options{maxDepth: defaultMaxDepth}
	for _, opt := range e.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	if v == nil {
		return fmt.Errorf("params: Encode(nil)")
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("params: Encode(nil %T)", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return &UnsupportedTypeError{Type: rv.Type()}
	}

	es := &encodeState{depth: o.maxDepth}
	var buf bytes.Buffer
	if err := es.encodeBlock(rv, &buf); err != nil {
		return err
	}
	_, err := e.w.Write(buf.Bytes())
	return err
}

type encodeState struct {
	depth int
}

// encodeBlock renders v as one labeled block appended to out. A nested
// parameter struct is rendered first as its own complete block, so child
// blocks precede their parent in the output; the parent marks the field
// with a "true" placeholder line.
func (es *encodeState) encodeBlock(v reflect.Value, out *bytes.Buffer) error {
	es.depth--
	if es.depth <= 0 {
		return fmt.Errorf("params: reached max recursion depth")
	}
	defer func() { es.depth++ }()

	t := v.Type()
	if t.Name() == "" {
		return fmt.Errorf("params: cannot encode unnamed struct type %s", t)
	}

	var b bytes.Buffer
	b.WriteByte('\n')
	b.WriteString(t.Name())
	b.WriteString(" = {\n")
	tbl := oracle.For(t)
	for i := range tbl.Fields {
		f := &tbl.Fields[i]
		fv := v.FieldByIndex(f.Index)

		if f.Block {
			if f.Optional {
				if fv.IsNil() {
					writePair(&b, f.Name, "false")
					continue
				}
				fv = fv.Elem()
			}
			if err := es.encodeBlock(fv, out); err != nil {
				return err
			}
			writePair(&b, f.Name, "true")
			continue
		}

		s, err := formatValue(fv)
		if err != nil {
			return err
		}
		writePair(&b, f.Name, s)
	}
	b.WriteString("}\n")

	_, err := out.Write(b.Bytes())
	return err
}

func writePair(b *bytes.Buffer, key, value string) {
	b.WriteString(key)
	b.WriteString(" : ")
	b.WriteString(value)
	b.WriteByte('\n')
}

// formatValue renders a primitive field value as text. A nil pointer to a
// primitive renders as the null literal so the reader can clear the field
// again.
func formatValue(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "None", nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	default:
		return "", &UnsupportedTypeError{Type: v.Type()}
	}
}
