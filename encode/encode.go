// Package encode serializes sentences back to their text form, the mirror of
// parse. For well-formed input the two compose to the identity byte-for-byte.
package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/conllab/go-conllu/ir"
	"github.com/conllab/go-conllu/schema"
)

// Encoder writes sentences of one schema. It holds the compiled serializer
// and is safe for concurrent use.
type Encoder[R any] struct {
	serialize func(rec *R) (string, error)
	marker    byte
}

// New builds an encoder over the compiled serializer of s.
func New[R any](s *schema.Schema[R], opts ...Option) *Encoder[R] {
	cfg := config{marker: '#'}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Encoder[R]{
		serialize: s.Serializer(),
		marker:    cfg.marker,
	}
}

// Token serializes a single record to its line, without a trailing
// terminator. Failures wrap schema.ErrFormat.
func (e *Encoder[R]) Token(rec *R) (string, error) {
	return e.serialize(rec)
}

// Sentence serializes one sentence block: metadata comment lines in
// insertion order, then one line per token, each newline-terminated.
func (e *Encoder[R]) Sentence(snt *ir.Sentence[R]) (string, error) {
	var b strings.Builder
	if err := e.WriteSentence(&b, snt); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteSentence writes one sentence block to w.
func (e *Encoder[R]) WriteSentence(w io.Writer, snt *ir.Sentence[R]) error {
	meta := snt.Meta()
	for _, key := range meta.Keys() {
		v, _ := meta.Get(key)
		var line string
		if val, ok := v.Get(); ok {
			line = fmt.Sprintf("%c %s = %s\n", e.marker, key, val)
		} else {
			line = fmt.Sprintf("%c %s\n", e.marker, key)
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	for _, rec := range snt.Tokens() {
		line, err := e.serialize(rec)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteCorpus writes every sentence to w, each block followed by the blank
// separator line.
func (e *Encoder[R]) WriteCorpus(w io.Writer, snts []*ir.Sentence[R]) error {
	for _, snt := range snts {
		if err := e.WriteSentence(w, snt); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Option configures an Encoder.
type Option func(*config)

type config struct {
	marker byte
}

// WithCommentMarker sets the character that starts emitted metadata lines.
// The default is '#'.
func WithCommentMarker(marker byte) Option {
	return func(c *config) { c.marker = marker }
}
