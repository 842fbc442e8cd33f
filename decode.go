package params

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/jhaeger/go-params/internal/oracle"
	"github.com/jhaeger/go-params/internal/scanner"
)

// Decoder reads parameter blocks from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

const defaultMaxDepth = 1000

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as setting a maximum recursion depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode locates the block labeled with the type name of the value v points
// to and sets its matching fields. v must be a non-nil pointer to a named
// struct.
//
// Fields without a matching key in the block keep their current values, so
// callers decode into a default-constructed instance and only keys present
// in the input override the defaults.
//
// Decode mutates the target in place: if it returns an error partway
// through a block, keys processed before the failure have already been
// applied. Decode into a scratch instance when the previous state must
// survive an error.
//
// Note: this is a non-streaming implementation. It reads the entire reader
// into memory first, and each nested block is resolved by re-scanning the
// buffered input from the start.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return fmt.Errorf("params: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}

	o := options{maxDepth: defaultMaxDepth}
	for _, opt := range d.opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("params: Decode(non-pointer %T or nil)", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return &UnsupportedTypeError{Type: rv.Type()}
	}

	ds := &decodeState{data: data, depth: o.maxDepth}
	return ds.decodeBlock(rv)
}

type decodeState struct {
	data  []byte
	depth int
}

func (ds *decodeState) decodeBlock(rv reflect.Value) error {
	ds.depth--
	if ds.depth <= 0 {
		return fmt.Errorf("params: reached max recursion depth")
	}
	defer func() { ds.depth++ }()

	t := rv.Type()
	if t.Name() == "" {
		return fmt.Errorf("params: cannot decode into unnamed struct type %s", t)
	}

	blk, ok := scanner.Find(ds.data, t.Name())
	if !ok {
		return &BlockNotFoundError{Type: t}
	}

	tbl := oracle.For(t)
	for _, p := range blk.Pairs {
		f, ok := tbl.Lookup(p.Key)
		if !ok {
			return &UnknownFieldError{Type: t, Key: p.Key}
		}
		fv := rv.FieldByIndex(f.Index)

		if p.Value == "None" || p.Value == "null" {
			if !f.Optional {
				return &CoercionError{
					Type:  t,
					Field: f.Name,
					Value: p.Value,
					Err:   errors.New("null is only valid for pointer fields"),
				}
			}
			fv.Set(reflect.Zero(fv.Type()))
			continue
		}

		if f.Block {
			// The placeholder value marks whether the field was
			// materialized as its own block elsewhere in the input.
			if !parseBool(p.Value) {
				continue
			}
			if f.Optional {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fv = fv.Elem()
			}
			if err := ds.decodeBlock(fv); err != nil {
				return err
			}
			continue
		}

		if err := setValue(t, f, fv, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// setValue coerces raw into the field's declared type and assigns it.
func setValue(owner reflect.Type, f *oracle.Field, fv reflect.Value, raw string) error {
	for fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		fv = fv.Elem()
	}

	switch fv.Kind() {
	case reflect.String:
		fv.SetString(raw)
	case reflect.Bool:
		fv.SetBool(parseBool(raw))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &CoercionError{Type: owner, Field: f.Name, Value: raw, Err: err}
		}
		if fv.OverflowInt(n) {
			return &CoercionError{
				Type: owner, Field: f.Name, Value: raw,
				Err: fmt.Errorf("value overflows %s", fv.Type()),
			}
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return &CoercionError{Type: owner, Field: f.Name, Value: raw, Err: err}
		}
		if fv.OverflowUint(n) {
			return &CoercionError{
				Type: owner, Field: f.Name, Value: raw,
				Err: fmt.Errorf("value overflows %s", fv.Type()),
			}
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &CoercionError{Type: owner, Field: f.Name, Value: raw, Err: err}
		}
		if fv.OverflowFloat(x) {
			return &CoercionError{
				Type: owner, Field: f.Name, Value: raw,
				Err: fmt.Errorf("value overflows %s", fv.Type()),
			}
		}
		fv.SetFloat(x)
	default:
		return &UnsupportedTypeError{Type: fv.Type()}
	}
	return nil
}

// parseBool converts raw text to a bool: "1" and case-insensitive "true"
// are true, everything else is false.
func parseBool(raw string) bool {
	return raw == "1" || strings.EqualFold(raw, "true")
}
