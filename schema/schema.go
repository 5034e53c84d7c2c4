package schema

import (
	"fmt"
	"strings"
	"sync"
)

// Schema is the ordered field layout of one record type. Construct with New;
// the compiled parse and serialize routines are built once per Schema and
// cached, so a Schema is cheap to share after construction.
type Schema[R any] struct {
	fields    []Field[R]
	delimiter string
	collapse  bool
	postParse func(*R)

	variadicAt int // -1 when all fields are fixed

	once      sync.Once
	parse     func(line string) (*R, error)
	serialize func(rec *R) (string, error)
}

// Option configures a Schema at construction.
type Option[R any] func(*Schema[R])

// WithDelimiter sets the column delimiter. The default is a tab.
func WithDelimiter[R any](d string) Option[R] {
	return func(s *Schema[R]) { s.delimiter = d }
}

// CollapseDelimiters treats runs of consecutive delimiters as one, instead of
// as empty columns.
func CollapseDelimiters[R any]() Option[R] {
	return func(s *Schema[R]) { s.collapse = true }
}

// WithPostParse runs fn on every freshly decoded record, after all fields are
// populated. Used for rules spanning several fields.
func WithPostParse[R any](fn func(*R)) Option[R] {
	return func(s *Schema[R]) { s.postParse = fn }
}

// New validates the field layout and returns the schema. Fields decode and
// encode in declaration order. Errors wrap ErrSchema: no fields, a duplicate
// field name, or more than one variadic field.
func New[R any](fields []Field[R], opts ...Option[R]) (*Schema[R], error) {
	s := &Schema[R]{
		fields:     fields,
		delimiter:  "\t",
		variadicAt: -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: schema has no fields", ErrSchema)
	}
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if _, dup := seen[f.name]; dup {
			return nil, fmt.Errorf("%w: duplicate field name %q", ErrSchema, f.name)
		}
		seen[f.name] = struct{}{}
		if f.variadic {
			if s.variadicAt >= 0 {
				return nil, fmt.Errorf("%w: fields %q and %q are both variadic, at most one allowed",
					ErrSchema, fields[s.variadicAt].name, f.name)
			}
			s.variadicAt = i
		}
	}
	return s, nil
}

// MustNew is New, panicking on a schema definition error. Intended for
// package-level reference schemas.
func MustNew[R any](fields []Field[R], opts ...Option[R]) *Schema[R] {
	s, err := New(fields, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Columns returns the number of columns of a fixed schema, or the minimum
// column count when a variadic field is present.
func (s *Schema[R]) Columns() int {
	if s.variadicAt >= 0 {
		return len(s.fields) - 1
	}
	return len(s.fields)
}

// Parser returns the compiled line-to-record routine. The routine strips a
// single trailing line terminator, splits on the delimiter, validates the
// column count, and applies every field's decode in declaration order. It is
// a pure function, safe for concurrent use.
func (s *Schema[R]) Parser() func(line string) (*R, error) {
	s.compile()
	return s.parse
}

// Serializer returns the compiled record-to-line routine, the mirror of
// Parser. The produced line carries no trailing terminator.
func (s *Schema[R]) Serializer() func(rec *R) (string, error) {
	s.compile()
	return s.serialize
}

func (s *Schema[R]) compile() {
	s.once.Do(func() {
		s.parse = s.compileParser()
		s.serialize = s.compileSerializer()
	})
}

func (s *Schema[R]) compileParser() func(line string) (*R, error) {
	fields := s.fields
	nFixed := s.Columns()
	variadicAt := s.variadicAt

	return func(line string) (*R, error) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		cols := strings.Split(line, s.delimiter)
		if s.collapse {
			cols = dropEmpty(cols)
		}

		if variadicAt < 0 {
			if len(cols) != nFixed {
				return nil, fmt.Errorf("%w: token line must have %d columns, got %d: %q",
					ErrParse, nFixed, len(cols), line)
			}
		} else if len(cols) < nFixed {
			return nil, fmt.Errorf("%w: token line must have at least %d columns, got %d: %q",
				ErrParse, nFixed, len(cols), line)
		}

		rec := new(R)
		at := 0
		for i, f := range fields {
			var take int
			if i == variadicAt {
				take = len(cols) - nFixed
			} else {
				take = 1
			}
			if err := f.decode(cols[at:at+take], rec); err != nil {
				return nil, fmt.Errorf("%w: line %q", err, line)
			}
			at += take
		}
		if s.postParse != nil {
			s.postParse(rec)
		}
		return rec, nil
	}
}

func (s *Schema[R]) compileSerializer() func(rec *R) (string, error) {
	fields := s.fields

	return func(rec *R) (string, error) {
		cols := make([]string, 0, len(fields))
		for _, f := range fields {
			enc, err := f.encode(rec)
			if err != nil {
				return "", fmt.Errorf("%w: record %+v", err, *rec)
			}
			cols = append(cols, enc...)
		}
		return strings.Join(cols, s.delimiter), nil
	}
}

func dropEmpty(cols []string) []string {
	out := cols[:0]
	for _, c := range cols {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
