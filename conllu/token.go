package conllu

import (
	"strings"

	"github.com/conllab/go-conllu/schema"
)

// Token is one line of the reference 10-column CoNLL-U annotation schema.
// The underscore is the empty marker throughout: an absent scalar, an empty
// feature set, an empty mapping.
type Token struct {
	ID     ID
	Form   schema.Optional[string]
	Lemma  schema.Optional[string]
	Upos   schema.Optional[string]
	Xpos   schema.Optional[string]
	Feats  map[string]schema.Set[string]
	Head   schema.Optional[ID]
	Deprel schema.Optional[string]
	Deps   map[ID][]string
	Misc   map[string]schema.Optional[schema.Set[string]]
}

// IsMultiword reports whether the token spans a range of words.
func (t *Token) IsMultiword() bool { return t.ID.IsRange() }

// IsEmptyNode reports whether the token is an ellipsis annotation node. This
// is about the id shape, not about any field being empty.
func (t *Token) IsEmptyNode() bool { return t.ID.IsDecimal() }

const empty = "_"

func idCodec() schema.Codec[ID] {
	return schema.Via(
		func(raw string) (ID, error) { return ID(raw), nil },
		func(id ID) (string, error) { return string(id), nil },
	)
}

func lowerCmp(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func tokenFields() []schema.Field[Token] {
	id := idCodec()
	str := schema.String()
	optStr := schema.Nullable(str, empty)
	lowerSet := schema.UniqueArray(str, ",", "", lowerCmp)

	return []schema.Field[Token]{
		schema.Bind("id", id,
			func(t *Token) ID { return t.ID },
			func(t *Token, v ID) { t.ID = v }),
		schema.Bind("form", optStr,
			func(t *Token) schema.Optional[string] { return t.Form },
			func(t *Token, v schema.Optional[string]) { t.Form = v }),
		schema.Bind("lemma", optStr,
			func(t *Token) schema.Optional[string] { return t.Lemma },
			func(t *Token, v schema.Optional[string]) { t.Lemma = v }),
		schema.Bind("upos", optStr,
			func(t *Token) schema.Optional[string] { return t.Upos },
			func(t *Token, v schema.Optional[string]) { t.Upos = v }),
		schema.Bind("xpos", optStr,
			func(t *Token) schema.Optional[string] { return t.Xpos },
			func(t *Token, v schema.Optional[string]) { t.Xpos = v }),
		schema.Bind("feats", schema.Mapping(str, lowerSet, "|", "=", empty, lowerCmp, false),
			func(t *Token) map[string]schema.Set[string] { return t.Feats },
			func(t *Token, v map[string]schema.Set[string]) { t.Feats = v }),
		schema.Bind("head", schema.Nullable(id, empty),
			func(t *Token) schema.Optional[ID] { return t.Head },
			func(t *Token, v schema.Optional[ID]) { t.Head = v }),
		schema.Bind("deprel", optStr,
			func(t *Token) schema.Optional[string] { return t.Deprel },
			func(t *Token, v schema.Optional[string]) { t.Deprel = v }),
		schema.Bind("deps", schema.Mapping(id, schema.FixedArray(str, ":", "", 0, false), "|", ":", empty, Compare, false),
			func(t *Token) map[ID][]string { return t.Deps },
			func(t *Token, v map[ID][]string) { t.Deps = v }),
		schema.Bind("misc", schema.Mapping(str, schema.Nullable(lowerSet, ""), "|", "=", empty, lowerCmp, true),
			func(t *Token) map[string]schema.Optional[schema.Set[string]] { return t.Misc },
			func(t *Token, v map[string]schema.Optional[schema.Set[string]]) { t.Misc = v }),
	}
}

// Underscore form and lemma columns mean the literal values were dropped from
// the annotation; both decode to the raw underscore in that case, matching
// the format's lemmatization-withheld convention.
func postParse(t *Token) {
	if !t.Form.Present() && !t.Lemma.Present() {
		t.Form = schema.Some(empty)
		t.Lemma = schema.Some(empty)
	}
}

var tokenSchema = schema.MustNew(tokenFields(), schema.WithPostParse(postParse))

// TokenSchema returns the compiled reference schema shared by the package's
// helpers. Custom variants can rebuild it from their own fields with the
// schema package directly.
func TokenSchema() *schema.Schema[Token] { return tokenSchema }
