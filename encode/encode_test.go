package encode_test

import (
	"strings"
	"testing"

	"github.com/conllab/go-conllu/encode"
	"github.com/conllab/go-conllu/ir"
	"github.com/conllab/go-conllu/schema"
)

type rec struct {
	ID   string
	Note schema.Optional[string]
}

var recSchema = schema.MustNew([]schema.Field[rec]{
	schema.Bind("id", schema.String(),
		func(r *rec) string { return r.ID },
		func(r *rec, v string) { r.ID = v }),
	schema.Bind("note", schema.Nullable(schema.String(), "_"),
		func(r *rec) schema.Optional[string] { return r.Note },
		func(r *rec, v schema.Optional[string]) { r.Note = v }),
})

func sentence(recs ...*rec) *ir.Sentence[rec] {
	snt := &ir.Sentence[rec]{}
	for _, r := range recs {
		snt.Append(r)
	}
	return snt
}

func TestWriteSentence(t *testing.T) {
	snt := sentence(
		&rec{ID: "1", Note: schema.Some("hello")},
		&rec{ID: "2"},
	)
	snt.Meta().Set(ir.SentIDKey, schema.Some("s-1"))
	snt.Meta().Set(ir.NewParKey, schema.None[string]())

	var b strings.Builder
	if err := encode.New(recSchema).WriteSentence(&b, snt); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "# sent_id = s-1\n" +
		"# newpar\n" +
		"1\thello\n" +
		"2\t_\n"
	if b.String() != want {
		t.Errorf("got %q, want %q", b.String(), want)
	}
}

func TestWriteCorpusSeparators(t *testing.T) {
	snts := []*ir.Sentence[rec]{
		sentence(&rec{ID: "1"}),
		sentence(&rec{ID: "1"}),
	}
	var b strings.Builder
	if err := encode.New(recSchema).WriteCorpus(&b, snts); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, want := b.String(), "1\t_\n\n1\t_\n\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCommentMarker(t *testing.T) {
	snt := sentence(&rec{ID: "1"})
	snt.Meta().Set("origin", schema.Some("test"))

	out, err := encode.New(recSchema, encode.WithCommentMarker(';')).Sentence(snt)
	if err != nil {
		t.Fatalf("sentence: %v", err)
	}
	if !strings.HasPrefix(out, "; origin = test\n") {
		t.Errorf("got %q, want ';' marker on metadata", out)
	}
}
