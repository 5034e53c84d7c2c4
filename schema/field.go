package schema

import (
	"errors"
	"fmt"
)

// Field binds one codec to a column of the record type R. Fixed fields
// consume exactly one column; a variadic field consumes the run of columns
// left over after the fixed fields are placed.
type Field[R any] struct {
	name     string
	variadic bool
	decode   func(cols []string, rec *R) error
	encode   func(rec *R) ([]string, error)
}

// Name returns the declared field name.
func (f Field[R]) Name() string { return f.name }

// Bind declares a fixed-width field converting its single column through c
// and accessing the record through get/set.
func Bind[R, V any](name string, c Codec[V], get func(*R) V, set func(*R, V)) Field[R] {
	return Field[R]{
		name: name,
		decode: func(cols []string, rec *R) error {
			v, err := c.Decode(cols[0])
			if err != nil {
				return decodeErr(name, err)
			}
			set(rec, v)
			return nil
		},
		encode: func(rec *R) ([]string, error) {
			s, err := c.Encode(get(rec))
			if err != nil {
				return nil, encodeErr(name, err)
			}
			return []string{s}, nil
		},
	}
}

// BindVariadic declares the variable-width field: it decodes each absorbed
// column through c into one element of a slice, and contributes one column
// per element on encode. A schema may declare at most one such field.
func BindVariadic[R, V any](name string, c Codec[V], get func(*R) []V, set func(*R, []V)) Field[R] {
	return Field[R]{
		name:     name,
		variadic: true,
		decode: func(cols []string, rec *R) error {
			vs := make([]V, len(cols))
			for i, col := range cols {
				v, err := c.Decode(col)
				if err != nil {
					return decodeErr(name, err)
				}
				vs[i] = v
			}
			set(rec, vs)
			return nil
		},
		encode: func(rec *R) ([]string, error) {
			vs := get(rec)
			cols := make([]string, len(vs))
			for i, v := range vs {
				s, err := c.Encode(v)
				if err != nil {
					return nil, encodeErr(name, err)
				}
				cols[i] = s
			}
			return cols, nil
		},
	}
}

// decodeErr attributes err to the named field, promoting errors from opaque
// Via conversions into ErrParse.
func decodeErr(name string, err error) error {
	if errors.Is(err, ErrParse) {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return fmt.Errorf("field %q: %w: %v", name, ErrParse, err)
}

func encodeErr(name string, err error) error {
	if errors.Is(err, ErrFormat) {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return fmt.Errorf("field %q: %w: %v", name, ErrFormat, err)
}
