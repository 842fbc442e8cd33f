package params

import "fmt"

// options holds the resolved configuration for a single encode, decode or
// file operation.
type options struct {
	maxDepth int
	truncate bool
}

// An Option configures an encode, decode or file operation.
type Option func(*options) error

// MaxDepth returns an Option that sets the maximum recursion depth for
// nested blocks. This bounds both encoding and decoding of deeply nested
// parameter trees.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("params: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Truncate returns an Option that makes WriteFile replace the file's
// contents instead of appending to them. It has no effect on other
// operations.
func Truncate() Option {
	return func(o *options) error {
		o.truncate = true
		return nil
	}
}
