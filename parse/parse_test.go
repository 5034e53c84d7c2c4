package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/conllab/go-conllu/encode"
	"github.com/conllab/go-conllu/ir"
	"github.com/conllab/go-conllu/parse"
	"github.com/conllab/go-conllu/schema"
)

type rec struct {
	ID   string
	Form schema.Optional[string]
}

var recSchema = schema.MustNew([]schema.Field[rec]{
	schema.Bind("id", schema.String(),
		func(r *rec) string { return r.ID },
		func(r *rec, v string) { r.ID = v }),
	schema.Bind("form", schema.Nullable(schema.String(), "_"),
		func(r *rec) schema.Optional[string] { return r.Form },
		func(r *rec, v schema.Optional[string]) { r.Form = v }),
})

const twoSentences = `# sent_id = a
# text = hi there
1	hi
2	there

1	bye
`

func TestSentenceBlocks(t *testing.T) {
	snts, err := parse.All(strings.NewReader(twoSentences), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	if len(snts) != 2 {
		t.Fatalf("got %d sentences, want 2", len(snts))
	}

	first := snts[0]
	if first.Meta().Len() != 2 || first.Len() != 2 {
		t.Errorf("first sentence: %d meta, %d tokens", first.Meta().Len(), first.Len())
	}
	if id, _ := first.ID().Get(); id != "a" {
		t.Errorf("sent_id = %q", id)
	}
	if text, _ := first.Text().Get(); text != "hi there" {
		t.Errorf("text = %q", text)
	}
	if start, end := first.Lines(); start != 1 || end != 4 {
		t.Errorf("first lines = %d..%d", start, end)
	}
	if start, end := snts[1].Lines(); start != 6 || end != 6 {
		t.Errorf("second lines = %d..%d", start, end)
	}

	forms := []string{}
	for _, tok := range first.Tokens() {
		forms = append(forms, tok.Form.Or("_"))
	}
	if diff := cmp.Diff([]string{"hi", "there"}, forms); diff != "" {
		t.Errorf("forms mismatch:\n%s", diff)
	}
}

func TestUnterminatedFinalSentence(t *testing.T) {
	snts, err := parse.All(strings.NewReader("1\tend"), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	if len(snts) != 1 || snts[0].Len() != 1 {
		t.Fatalf("got %+v", snts)
	}
}

func TestConsecutiveBlankLines(t *testing.T) {
	src := "1\ta\n\n\n\n1\tb\n\n\n"
	snts, err := parse.All(strings.NewReader(src), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	if len(snts) != 2 {
		t.Fatalf("got %d sentences, want 2", len(snts))
	}
}

func TestCommentAfterTokenFails(t *testing.T) {
	src := "1\ta\n# too = late\n"
	_, err := parse.All(strings.NewReader(src), recSchema)
	if !errors.Is(err, schema.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
	var perr *parse.Error
	if !errors.As(err, &perr) || perr.Line != 2 {
		t.Errorf("err = %#v, want line 2", err)
	}
}

func TestMalformedTokenCarriesLineNumber(t *testing.T) {
	src := "# sent_id = x\n1\ta\n1\ta\tb\n"
	_, err := parse.All(strings.NewReader(src), recSchema)
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *parse.Error", err)
	}
	if perr.Line != 3 || perr.Text != "1\ta\tb" {
		t.Errorf("err = line %d text %q", perr.Line, perr.Text)
	}
	if !errors.Is(err, schema.ErrParse) {
		t.Errorf("err does not wrap ErrParse: %v", err)
	}
}

func TestSingletonAndKeyValueComments(t *testing.T) {
	src := "# newdoc\n# text = a = b\n1\tx\n"
	snts, err := parse.All(strings.NewReader(src), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	m := snts[0].Meta()
	if v, ok := m.Get(ir.NewDocKey); !ok || v.Present() {
		t.Errorf("newdoc = %+v, %v, want declared singleton", v, ok)
	}
	if v, _ := m.Get(ir.TextKey); v.Or("") != "a = b" {
		t.Errorf("text = %q, want value split at first equals", v.Or(""))
	}
}

func TestDocParIDPropagation(t *testing.T) {
	src := strings.Join([]string{
		"# newdoc id = d1",
		"# newpar id = p1",
		"1\ta",
		"",
		"1\tb",
		"",
		"# newpar id = p2",
		"1\tc",
		"",
		"# newdoc",
		"1\td",
		"",
	}, "\n")

	snts, err := parse.All(strings.NewReader(src), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	type ids struct{ Doc, Par string }
	got := []ids{}
	for _, s := range snts {
		got = append(got, ids{s.DocID().Or("-"), s.ParID().Or("-")})
	}
	want := []ids{
		{"d1", "p1"},
		{"d1", "p1"}, // inherits both
		{"d1", "p2"}, // redeclares paragraph only
		{"-", "p2"},  // bare newdoc resets the document id
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("id propagation mismatch (-want +got):\n%s", diff)
	}
}

func TestCRLFTolerated(t *testing.T) {
	src := "# sent_id = w\r\n1\tx\r\n\r\n"
	snts, err := parse.All(strings.NewReader(src), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := snts[0].ID().Get(); id != "w" {
		t.Errorf("sent_id = %q", id)
	}
}

func TestCustomCommentMarker(t *testing.T) {
	src := "; sent_id = m\n1\tx\n"
	snts, err := parse.All(strings.NewReader(src), recSchema, parse.WithCommentMarker(';'))
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := snts[0].ID().Get(); id != "m" {
		t.Errorf("sent_id = %q", id)
	}
}

func TestRoundTripThroughEncoder(t *testing.T) {
	snts, err := parse.All(strings.NewReader(twoSentences), recSchema)
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := encode.New(recSchema).WriteCorpus(&b, snts); err != nil {
		t.Fatal(err)
	}
	want := twoSentences + "\n" // the source lacks the final separator line
	if b.String() != want {
		t.Errorf("round trip:\n%q\nwant:\n%q", b.String(), want)
	}
}
