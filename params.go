package params

import (
	"bytes"
	"os"
)

// Marshal returns the block encoding of v.
//
// Marshal is pure: it renders the blocks for v and every nested parameter
// struct into a byte slice and touches no files. Use WriteFile to persist
// the result, or an Encoder to append it to an arbitrary stream.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal locates the block for v's type in data and stores the result in
// the value pointed to by v. See Decoder.Decode for the conversion rules.
func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// WriteFile appends the block encoding of v to the named file, creating it
// if necessary. With the Truncate option the file's previous contents are
// replaced instead.
//
// The blocks are fully rendered before the file is opened, and the handle
// is closed on every path.
func WriteFile(name string, v any, opts ...Option) error {
	o := options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	data, err := Marshal(v, opts...)
	if err != nil {
		return err
	}

	flag := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if o.truncate {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(name, flag, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads the named file and decodes the block for v's type into the
// value pointed to by v. The file handle is released before decoding
// begins.
func ReadFile(name string, v any, opts ...Option) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	return Unmarshal(data, v, opts...)
}
