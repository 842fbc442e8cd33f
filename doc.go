/*
Package params persists trees of typed parameter structs to a human-editable
block format and reconstructs equivalent trees from it, without any schema
declared alongside the file. The API mirrors the standard `encoding/json`
package: Marshal and Unmarshal for byte slices, Encoder and Decoder for
streams, plus WriteFile and ReadFile for the common append-to-a-run-file
workflow.

A parameter struct serializes as one labeled block:

	Sample = {
	enabled : true
	count : 3
	label : x
	}

Each exported field becomes one "key : value" line, in declaration order.
Struct tags rename keys (`params:"run_scf"`), and `params:"-"` skips a
field. Anonymous embedded structs are flattened into the embedding type's
own block.

A field whose type is itself a named struct is a nested parameter group. It
is written as its own block ahead of the parent's block, and the parent
marks the field with a boolean placeholder line such as "psi4 : true".
On read, a truthy placeholder triggers a lookup of the nested block by its
own type name anywhere in the input, so blocks may appear in any order and
several types can share one file:

	qc := vqe.DefaultQC()
	if err := params.ReadFile("run.out", &qc); err != nil {
		// handle error
	}

Decoding always starts from the caller's value: keys present in the input
override fields, everything else keeps its current value. Construct the
default instance first and the file only has to mention what differs.

Types are never declared in the file. The decoder infers each field's type
from the target struct — the default instance acts as a type oracle — and
coerces raw text accordingly: "1" and case-insensitive "true" for booleans,
strconv parsing with overflow checks for numbers, verbatim text for
strings. Key lookup tries an exact match first, then falls back to a
case-insensitive one; unknown keys, unconvertible values and missing blocks
fail with UnknownFieldError, CoercionError and BlockNotFoundError
respectively.

The format performs no escaping: a value containing a colon is truncated at
that colon on read, and no value line may consist solely of "}".
*/
package params
