// Package ir holds the in-memory representation of a parsed document block:
// ordered metadata plus the decoded token records, independent of any
// particular column schema.
package ir

import "github.com/conllab/go-conllu/schema"

// Reserved metadata keys shared across CoNLL variants.
const (
	SentIDKey   = "sent_id"
	TextKey     = "text"
	NewDocKey   = "newdoc"
	NewDocIDKey = "newdoc id"
	NewParKey   = "newpar"
	NewParIDKey = "newpar id"
)

// Sentence is one blank-line-delimited block: the comment metadata followed
// by the token records, in source order. R is the decoded record type of the
// active schema.
type Sentence[R any] struct {
	meta   Meta
	tokens []*R

	// 1-based source line bounds of the block, 0 when unknown.
	startLine, endLine int

	docID, parID schema.Optional[string]
}

// Meta returns the metadata for reading and mutation.
func (s *Sentence[R]) Meta() *Meta { return &s.meta }

// Tokens returns the token records in source order.
func (s *Sentence[R]) Tokens() []*R { return s.tokens }

// Len returns the number of token records.
func (s *Sentence[R]) Len() int { return len(s.tokens) }

// Append adds a token record at the end of the sentence.
func (s *Sentence[R]) Append(rec *R) { s.tokens = append(s.tokens, rec) }

// ID returns the sent_id metadata value, absent when undeclared.
func (s *Sentence[R]) ID() schema.Optional[string] {
	return s.metaValue(SentIDKey)
}

// Text returns the text metadata value, absent when undeclared.
func (s *Sentence[R]) Text() schema.Optional[string] {
	return s.metaValue(TextKey)
}

// DocID returns the document id in effect for this sentence. It is declared
// by newdoc metadata or inherited from the preceding sentence by the parser.
func (s *Sentence[R]) DocID() schema.Optional[string] { return s.docID }

// ParID returns the paragraph id in effect for this sentence, following the
// same rules as DocID.
func (s *Sentence[R]) ParID() schema.Optional[string] { return s.parID }

// SetDocID records the effective document id. Called by the parser; callers
// assembling sentences by hand may use it as well.
func (s *Sentence[R]) SetDocID(id schema.Optional[string]) { s.docID = id }

// SetParID records the effective paragraph id.
func (s *Sentence[R]) SetParID(id schema.Optional[string]) { s.parID = id }

// Lines returns the 1-based start and end source line numbers of the block,
// both 0 when the sentence was not produced by the parser.
func (s *Sentence[R]) Lines() (start, end int) { return s.startLine, s.endLine }

// SetLines records the source line bounds.
func (s *Sentence[R]) SetLines(start, end int) {
	s.startLine, s.endLine = start, end
}

func (s *Sentence[R]) metaValue(key string) schema.Optional[string] {
	v, ok := s.meta.Get(key)
	if !ok {
		return schema.None[string]()
	}
	return v
}
