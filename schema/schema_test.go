package schema

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type annRec struct {
	Name string
	Rank int
	Tags []string
}

func annFields() []Field[annRec] {
	return []Field[annRec]{
		Bind("name", String(),
			func(r *annRec) string { return r.Name },
			func(r *annRec, v string) { r.Name = v }),
		Bind("rank", Int(),
			func(r *annRec) int { return r.Rank },
			func(r *annRec, v int) { r.Rank = v }),
	}
}

func tagsField() Field[annRec] {
	return BindVariadic("tags", String(),
		func(r *annRec) []string { return r.Tags },
		func(r *annRec, v []string) { r.Tags = v })
}

func TestNewErrors(t *testing.T) {
	if _, err := New[annRec](nil); !errors.Is(err, ErrSchema) {
		t.Errorf("empty schema: %v, want ErrSchema", err)
	}

	dup := append(annFields(), annFields()[0])
	if _, err := New(dup); !errors.Is(err, ErrSchema) {
		t.Errorf("duplicate names: %v, want ErrSchema", err)
	}

	twoVariadic := append(annFields(), tagsField(), BindVariadic("more", String(),
		func(r *annRec) []string { return nil },
		func(r *annRec, v []string) {}))
	if _, err := New(twoVariadic); !errors.Is(err, ErrSchema) {
		t.Errorf("two variadic fields: %v, want ErrSchema", err)
	}
}

func TestFixedColumnCount(t *testing.T) {
	s := MustNew(annFields())
	parse := s.Parser()

	rec, err := parse("dog\t3\n")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "dog" || rec.Rank != 3 {
		t.Errorf("parsed %+v", rec)
	}

	for _, bad := range []string{"dog", "dog\t3\tx", ""} {
		if _, err := parse(bad); !errors.Is(err, ErrParse) {
			t.Errorf("parse(%q): %v, want ErrParse", bad, err)
		}
	}
}

func TestVariadicSchema(t *testing.T) {
	s := MustNew(append(annFields(), tagsField()))
	parse := s.Parser()
	serialize := s.Serializer()

	tests := []struct {
		line string
		want annRec
	}{
		{"dog\t3", annRec{Name: "dog", Rank: 3, Tags: []string{}}},
		{"dog\t3\ta", annRec{Name: "dog", Rank: 3, Tags: []string{"a"}}},
		{"dog\t3\ta\tb\tc", annRec{Name: "dog", Rank: 3, Tags: []string{"a", "b", "c"}}},
	}
	for _, tc := range tests {
		got, err := parse(tc.line)
		if err != nil {
			t.Fatalf("parse(%q): %v", tc.line, err)
		}
		if diff := cmp.Diff(tc.want, *got); diff != "" {
			t.Errorf("parse(%q) mismatch (-want +got):\n%s", tc.line, diff)
		}
		back, err := serialize(got)
		if err != nil {
			t.Fatalf("serialize(%+v): %v", got, err)
		}
		if back != tc.line {
			t.Errorf("round trip of %q = %q", tc.line, back)
		}
	}

	if _, err := parse("dog"); !errors.Is(err, ErrParse) {
		t.Errorf("below fixed minimum: %v, want ErrParse", err)
	}
}

func TestCollapseDelimiters(t *testing.T) {
	s := MustNew(annFields(), WithDelimiter[annRec](" "), CollapseDelimiters[annRec]())
	rec, err := s.Parser()("dog   7")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Name != "dog" || rec.Rank != 7 {
		t.Errorf("parsed %+v", rec)
	}
}

func TestLineTerminatorStripped(t *testing.T) {
	parse := MustNew(annFields()).Parser()
	for _, line := range []string{"dog\t3", "dog\t3\n", "dog\t3\r\n"} {
		rec, err := parse(line)
		if err != nil {
			t.Fatalf("parse(%q): %v", line, err)
		}
		if rec.Rank != 3 {
			t.Errorf("parse(%q) = %+v", line, rec)
		}
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry[annRec]()
	s := MustNew(annFields())
	if err := reg.Register("ann", s); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register("ann", s); !errors.Is(err, ErrSchema) {
		t.Errorf("double register: %v, want ErrSchema", err)
	}
	got, ok := reg.Lookup("ann")
	if !ok || got != s {
		t.Errorf("Lookup = %v, %v", got, ok)
	}
}
