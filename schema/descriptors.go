package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Nullable wraps inner so that raw text equal to empty decodes to the absent
// value, and the absent value encodes back to empty.
func Nullable[V any](inner Codec[V], empty string) Codec[Optional[V]] {
	return Codec[Optional[V]]{
		Decode: func(raw string) (Optional[V], error) {
			if raw == empty {
				return None[V](), nil
			}
			v, err := inner.Decode(raw)
			if err != nil {
				return None[V](), err
			}
			return Some(v), nil
		},
		Encode: func(o Optional[V]) (string, error) {
			v, ok := o.Get()
			if !ok {
				return empty, nil
			}
			return inner.Encode(v)
		},
	}
}

// Array decodes a delimited ordered sequence of inner-typed elements. Raw
// text equal to empty decodes to an empty sequence, and an empty sequence
// encodes back to empty.
func Array[V any](inner Codec[V], delimiter, empty string) Codec[[]V] {
	return Codec[[]V]{
		Decode: func(raw string) ([]V, error) {
			if raw == empty {
				return nil, nil
			}
			parts := strings.Split(raw, delimiter)
			vs := make([]V, len(parts))
			for i, part := range parts {
				v, err := inner.Decode(part)
				if err != nil {
					return nil, err
				}
				vs[i] = v
			}
			return vs, nil
		},
		Encode: func(vs []V) (string, error) {
			if len(vs) == 0 {
				return empty, nil
			}
			return joinEncoded(inner, vs, delimiter)
		},
	}
}

// FixedArray is Array with a fixed arity. An arity of 0 leaves the length
// unconstrained. When strict, a decoded sequence must have exactly arity
// components; otherwise missing trailing components are padded with the zero
// value and trailing zero encodings are dropped again on the way out.
func FixedArray[V any](inner Codec[V], delimiter, empty string, arity int, strict bool) Codec[[]V] {
	return Codec[[]V]{
		Decode: func(raw string) ([]V, error) {
			if raw == empty {
				return nil, nil
			}
			parts := strings.Split(raw, delimiter)
			if arity > 0 {
				if len(parts) > arity {
					return nil, fmt.Errorf("%w: %q has %d components, at most %d allowed",
						ErrParse, raw, len(parts), arity)
				}
				if strict && len(parts) < arity {
					return nil, fmt.Errorf("%w: %q has %d components, exactly %d required",
						ErrParse, raw, len(parts), arity)
				}
			}
			n := len(parts)
			if arity > 0 && !strict {
				n = arity
			}
			vs := make([]V, n)
			for i, part := range parts {
				v, err := inner.Decode(part)
				if err != nil {
					return nil, err
				}
				vs[i] = v
			}
			return vs, nil
		},
		Encode: func(vs []V) (string, error) {
			if len(vs) == 0 {
				return empty, nil
			}
			if arity > 0 {
				if len(vs) > arity || (strict && len(vs) != arity) {
					return "", fmt.Errorf("%w: tuple has %d components, %d required",
						ErrFormat, len(vs), arity)
				}
			}
			enc := make([]string, len(vs))
			for i, v := range vs {
				s, err := inner.Encode(v)
				if err != nil {
					return "", err
				}
				enc[i] = s
			}
			if !strict {
				for len(enc) > 1 && enc[len(enc)-1] == "" {
					enc = enc[:len(enc)-1]
				}
			}
			return strings.Join(enc, delimiter), nil
		},
	}
}

// UniqueArray decodes a delimited sequence into a deduplicated set. The order
// function re-imposes a deterministic element order on encode; when nil, the
// encoded order is unspecified.
func UniqueArray[V comparable](inner Codec[V], delimiter, empty string, order func(a, b V) int) Codec[Set[V]] {
	return Codec[Set[V]]{
		Decode: func(raw string) (Set[V], error) {
			if raw == empty {
				return Set[V]{}, nil
			}
			parts := strings.Split(raw, delimiter)
			s := make(Set[V], len(parts))
			for _, part := range parts {
				v, err := inner.Decode(part)
				if err != nil {
					return nil, err
				}
				s.Add(v)
			}
			return s, nil
		},
		Encode: func(s Set[V]) (string, error) {
			if len(s) == 0 {
				return empty, nil
			}
			vs := s.Values()
			if order != nil {
				slices.SortFunc(vs, order)
			}
			return joinEncoded(inner, vs, delimiter)
		},
	}
}

// Mapping decodes key/value pairs split first on pairDelim, then each pair on
// the first kvSep. A pair without the separator is a compact pair (its value
// decodes from the empty string) and is only accepted when compact is set; on
// encode, compact pairs are emitted for values whose encoding is empty. The
// order function sorts pairs by key on encode; when nil, the pair order is
// unspecified.
func Mapping[K comparable, V any](
	key Codec[K], val Codec[V],
	pairDelim, kvSep, empty string,
	order func(a, b K) int,
	compact bool,
) Codec[map[K]V] {
	return Codec[map[K]V]{
		Decode: func(raw string) (map[K]V, error) {
			m := map[K]V{}
			if raw == empty {
				return m, nil
			}
			for pair := range strings.SplitSeq(raw, pairDelim) {
				rawKey, rawVal, found := strings.Cut(pair, kvSep)
				if !found && !compact {
					return nil, fmt.Errorf("%w: pair %q has no key/value separator %q",
						ErrParse, pair, kvSep)
				}
				k, err := key.Decode(rawKey)
				if err != nil {
					return nil, err
				}
				v, err := val.Decode(rawVal)
				if err != nil {
					return nil, err
				}
				m[k] = v
			}
			return m, nil
		},
		Encode: func(m map[K]V) (string, error) {
			if len(m) == 0 {
				return empty, nil
			}
			keys := make([]K, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			if order != nil {
				slices.SortFunc(keys, order)
			}
			pairs := make([]string, len(keys))
			for i, k := range keys {
				ks, err := key.Encode(k)
				if err != nil {
					return "", err
				}
				vs, err := val.Encode(m[k])
				if err != nil {
					return "", err
				}
				if compact && vs == "" {
					pairs[i] = ks
				} else {
					pairs[i] = ks + kvSep + vs
				}
			}
			return strings.Join(pairs, pairDelim), nil
		},
	}
}

func joinEncoded[V any](inner Codec[V], vs []V, delimiter string) (string, error) {
	enc := make([]string, len(vs))
	for i, v := range vs {
		s, err := inner.Encode(v)
		if err != nil {
			return "", err
		}
		enc[i] = s
	}
	return strings.Join(enc, delimiter), nil
}
