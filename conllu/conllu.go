// Package conllu wires the schema compiler, document parser, encoder, and
// tree builder together for the standard 10-column CoNLL-U format: id, form,
// lemma, upos, xpos, feats, head, deprel, deps, misc.
package conllu

import (
	"io"
	"os"
	"strings"

	"github.com/conllab/go-conllu/encode"
	"github.com/conllab/go-conllu/ir"
	"github.com/conllab/go-conllu/parse"
	"github.com/conllab/go-conllu/tree"
)

// Sentence is a parsed CoNLL-U sentence block.
type Sentence = ir.Sentence[Token]

// Iter returns a lazy sentence iterator over r.
func Iter(r io.Reader) *parse.Iter[Token] {
	return parse.Sentences(r, tokenSchema)
}

// Load reads every sentence of r.
func Load(r io.Reader) ([]*Sentence, error) {
	return parse.All(r, tokenSchema)
}

// LoadString reads every sentence of the given source text.
func LoadString(source string) ([]*Sentence, error) {
	return Load(strings.NewReader(source))
}

// LoadFile reads every sentence of a UTF-8 encoded file.
func LoadFile(path string) ([]*Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

var encoder = encode.New(tokenSchema)

// Serialize renders one sentence block, newline-terminated lines included.
func Serialize(snt *Sentence) (string, error) {
	return encoder.Sentence(snt)
}

// SerializeToken renders a single token line without its terminator.
func SerializeToken(t *Token) (string, error) {
	return encoder.Token(t)
}

// Write writes sentences to w with the blank separator after each block.
func Write(w io.Writer, snts []*Sentence) error {
	return encoder.WriteCorpus(w, snts)
}

// TokenByID finds the token with the given id in the sentence.
func TokenByID(snt *Sentence, id ID) (*Token, bool) {
	for _, t := range snt.Tokens() {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// SentenceTree builds the dependency tree of the sentence. Multiword and
// empty-node tokens do not participate; the single token whose head is the
// virtual root id becomes the root.
func SentenceTree(snt *Sentence) (tree.Tree[*Token], error) {
	return TreeFromTokens(snt.Tokens())
}

// TreeFromTokens builds a dependency tree from tokens of any provenance,
// following the conventions of the format: head "0" marks the root, and
// multiword and empty-node tokens are skipped.
func TreeFromTokens(tokens []*Token) (tree.Tree[*Token], error) {
	return tree.FromRecords(tokens, VirtualRoot,
		func(t *Token) ID { return t.ID },
		func(t *Token) ID { return t.Head.Or("") },
		func(t *Token) bool { return t.IsMultiword() || t.IsEmptyNode() },
	)
}
