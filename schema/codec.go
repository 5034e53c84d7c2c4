package schema

import (
	"fmt"
	"strconv"
)

// Codec converts between the raw text of one column component and a value of
// type V. Codecs are pure: Decode and Encode must not retain or mutate state,
// so a single Codec value is safely shared between fields and schemas.
type Codec[V any] struct {
	Decode func(raw string) (V, error)
	Encode func(v V) (string, error)
}

// String is the identity codec for string columns.
func String() Codec[string] {
	return Codec[string]{
		Decode: func(raw string) (string, error) { return raw, nil },
		Encode: func(v string) (string, error) { return v, nil },
	}
}

// Int converts a column to an int. Decode fails with ErrParse on non-numeric
// text.
func Int() Codec[int] {
	return Codec[int]{
		Decode: func(raw string) (int, error) {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not an integer", ErrParse, raw)
			}
			return n, nil
		},
		Encode: func(v int) (string, error) {
			return strconv.Itoa(v), nil
		},
	}
}

// Float converts a column to a float64. Decode fails with ErrParse on
// non-numeric text.
func Float() Codec[float64] {
	return Codec[float64]{
		Decode: func(raw string) (float64, error) {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q is not a float", ErrParse, raw)
			}
			return f, nil
		},
		Encode: func(v float64) (string, error) {
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		},
	}
}

// Via builds a codec from arbitrary conversion functions. The functions are
// opaque to the schema compiler; errors they return are wrapped into ErrParse
// or ErrFormat unless they already carry one of the schema sentinels.
func Via[V any](decode func(string) (V, error), encode func(V) (string, error)) Codec[V] {
	return Codec[V]{Decode: decode, Encode: encode}
}
