package params

import "reflect"

// An UnknownFieldError reports a key in a block that has no corresponding
// field on the target type.
type UnknownFieldError struct {
	Type reflect.Type
	Key  string
}

func (e *UnknownFieldError) Error() string {
	return "params: unknown key \"" + e.Key + "\" for type " + e.Type.String()
}

// A CoercionError reports a raw value that could not be converted to the
// type of the field it was destined for.
type CoercionError struct {
	Type  reflect.Type
	Field string
	Value string
	Err   error
}

func (e *CoercionError) Error() string {
	msg := "params: cannot coerce \"" + e.Value + "\" into field " + e.Field + " of " + e.Type.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Unwrap() error { return e.Err }

// A BlockNotFoundError reports that the input contains no block labeled
// with the target type's name.
type BlockNotFoundError struct {
	Type reflect.Type
}

func (e *BlockNotFoundError) Error() string {
	return "params: no block found for type " + e.Type.String()
}

// An UnsupportedTypeError reports an attempt to encode a value of a type
// the block format cannot represent.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "params: unsupported type " + e.Type.String()
}
