package params_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jhaeger/go-params"
	"github.com/stretchr/testify/require"
)

func block(lines ...string) []byte {
	return []byte("\n" + strings.Join(lines, "\n") + "\n")
}

func TestUnmarshal_UnknownKey(t *testing.T) {
	input := block(
		"Sample = {",
		"count : 3",
		"frobnicate : 1",
		"}",
	)

	var got Sample
	err := params.Unmarshal(input, &got)
	require.Error(t, err)

	var unknownErr *params.UnknownFieldError
	require.ErrorAs(t, err, &unknownErr)
	require.Equal(t, "frobnicate", unknownErr.Key)
}

func TestUnmarshal_BooleanCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"True", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("input "+tt.raw, func(t *testing.T) {
			input := block(
				"Sample = {",
				"enabled : "+tt.raw,
				"}",
			)
			got := Sample{Enabled: !tt.want} // pre-set to the opposite
			require.NoError(t, params.Unmarshal(input, &got))
			require.Equal(t, tt.want, got.Enabled)
		})
	}
}

func TestUnmarshal_CoercionErrors(t *testing.T) {
	t.Run("Non-numeric text for an integer field", func(t *testing.T) {
		input := block(
			"Sample = {",
			"count : three",
			"}",
		)
		var got Sample
		err := params.Unmarshal(input, &got)

		var coercionErr *params.CoercionError
		require.ErrorAs(t, err, &coercionErr)
		require.Equal(t, "count", coercionErr.Field)
		require.Equal(t, "three", coercionErr.Value)
		require.Error(t, errors.Unwrap(coercionErr))
	})

	t.Run("Non-numeric text for a float field", func(t *testing.T) {
		type Tuned struct {
			Threshold float64 `params:"threshold"`
		}
		input := block(
			"Tuned = {",
			"threshold : tight",
			"}",
		)
		var got Tuned
		var coercionErr *params.CoercionError
		require.ErrorAs(t, params.Unmarshal(input, &got), &coercionErr)
	})

	t.Run("Keys before the failing one are already applied", func(t *testing.T) {
		input := block(
			"Sample = {",
			"label : x",
			"count : three",
			"}",
		)
		var got Sample
		require.Error(t, params.Unmarshal(input, &got))
		require.Equal(t, "x", got.Label)
	})

	t.Run("Integer overflow for a narrow field", func(t *testing.T) {
		type Narrow struct {
			Small int8 `params:"small"`
		}
		input := block(
			"Narrow = {",
			"small : 300",
			"}",
		)
		var got Narrow
		err := params.Unmarshal(input, &got)

		var coercionErr *params.CoercionError
		require.ErrorAs(t, err, &coercionErr)
		require.Contains(t, err.Error(), "overflows")
	})
}

func TestUnmarshal_BlockNotFound(t *testing.T) {
	input := block(
		"Other = {",
		"count : 3",
		"}",
	)

	var got Sample
	err := params.Unmarshal(input, &got)

	var notFoundErr *params.BlockNotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestUnmarshal_NullLiteral(t *testing.T) {
	type Optioned struct {
		Limit *int   `params:"limit"`
		Name  string `params:"name"`
	}

	t.Run("None clears a pointer field", func(t *testing.T) {
		limit := 5
		got := Optioned{Limit: &limit}
		input := block(
			"Optioned = {",
			"limit : None",
			"}",
		)
		require.NoError(t, params.Unmarshal(input, &got))
		require.Nil(t, got.Limit)
	})

	t.Run("null clears a pointer field", func(t *testing.T) {
		limit := 5
		got := Optioned{Limit: &limit}
		input := block(
			"Optioned = {",
			"limit : null",
			"}",
		)
		require.NoError(t, params.Unmarshal(input, &got))
		require.Nil(t, got.Limit)
	})

	t.Run("None fails on a non-pointer field", func(t *testing.T) {
		var got Optioned
		input := block(
			"Optioned = {",
			"name : None",
			"}",
		)
		var coercionErr *params.CoercionError
		require.ErrorAs(t, params.Unmarshal(input, &got), &coercionErr)
	})

	t.Run("Pointer field parses a plain value", func(t *testing.T) {
		var got Optioned
		input := block(
			"Optioned = {",
			"limit : 12",
			"}",
		)
		require.NoError(t, params.Unmarshal(input, &got))
		require.NotNil(t, got.Limit)
		require.Equal(t, 12, *got.Limit)
	})
}

func TestUnmarshal_NestedPlaceholders(t *testing.T) {
	type Child struct {
		Depth int `params:"depth"`
	}
	type Parent struct {
		Child *Child `params:"child"`
	}

	t.Run("False placeholder leaves the field unset", func(t *testing.T) {
		input := block(
			"Parent = {",
			"child : false",
			"}",
		)
		var got Parent
		require.NoError(t, params.Unmarshal(input, &got))
		require.Nil(t, got.Child)
	})

	t.Run("True placeholder resolves the child block", func(t *testing.T) {
		input := block(
			"Parent = {",
			"child : true",
			"}",
			"",
			"Child = {",
			"depth : 2",
			"}",
		)
		var got Parent
		require.NoError(t, params.Unmarshal(input, &got))
		require.NotNil(t, got.Child)
		require.Equal(t, 2, got.Child.Depth)
	})

	t.Run("True placeholder without a child block fails", func(t *testing.T) {
		input := block(
			"Parent = {",
			"child : true",
			"}",
		)
		var got Parent
		var notFoundErr *params.BlockNotFoundError
		require.ErrorAs(t, params.Unmarshal(input, &got), &notFoundErr)
	})
}

func TestUnmarshal_EmbeddedFieldsAreFlattened(t *testing.T) {
	type Common struct {
		Outfile string `params:"outfile"`
	}
	type Job struct {
		Common
		Steps int `params:"steps"`
	}

	input := block(
		"Job = {",
		"outfile : run.log",
		"steps : 4",
		"}",
	)
	var got Job
	require.NoError(t, params.Unmarshal(input, &got))
	require.Equal(t, "run.log", got.Outfile)
	require.Equal(t, 4, got.Steps)
}

func TestUnmarshal_LineHandling(t *testing.T) {
	t.Run("Repeated key takes the last value", func(t *testing.T) {
		input := block(
			"Sample = {",
			"count : 1",
			"count : 2",
			"}",
		)
		var got Sample
		require.NoError(t, params.Unmarshal(input, &got))
		require.Equal(t, 2, got.Count)
	})

	t.Run("Value is truncated at the first colon", func(t *testing.T) {
		input := block(
			"Sample = {",
			"label : a : b",
			"}",
		)
		var got Sample
		require.NoError(t, params.Unmarshal(input, &got))
		require.Equal(t, "a", got.Label)
	})

	t.Run("Label must match a whole token", func(t *testing.T) {
		input := block(
			"NotASampleBlock = {",
			"count : 1",
			"}",
			"",
			"Sample = {",
			"count : 2",
			"}",
		)
		var got Sample
		require.NoError(t, params.Unmarshal(input, &got))
		require.Equal(t, 2, got.Count)
	})

	t.Run("Keys absent from the block keep their defaults", func(t *testing.T) {
		got := Sample{Enabled: true, Count: 3, Label: "preset"}
		input := block(
			"Sample = {",
			"count : 9",
			"}",
		)
		require.NoError(t, params.Unmarshal(input, &got))
		require.Equal(t, Sample{Enabled: true, Count: 9, Label: "preset"}, got)
	})
}

func TestDecode_InvalidTargets(t *testing.T) {
	t.Run("Non-pointer target", func(t *testing.T) {
		err := params.Unmarshal(block("Sample = {", "}"), Sample{})
		require.Error(t, err)
		require.Contains(t, err.Error(), "non-pointer")
	})

	t.Run("Nil pointer target", func(t *testing.T) {
		var p *Sample
		err := params.Unmarshal(block("Sample = {", "}"), p)
		require.Error(t, err)
	})

	t.Run("Pointer to non-struct target", func(t *testing.T) {
		var n int
		err := params.Unmarshal(block("Sample = {", "}"), &n)
		var unsupportedErr *params.UnsupportedTypeError
		require.ErrorAs(t, err, &unsupportedErr)
	})

	t.Run("Nil reader", func(t *testing.T) {
		var got Sample
		err := params.NewDecoder(nil).Decode(&got)
		require.Error(t, err)
		require.Contains(t, err.Error(), "nil reader")
	})
}
