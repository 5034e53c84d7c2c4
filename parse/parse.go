// Package parse turns a line stream into sentences: blank-line-delimited
// blocks of comment metadata followed by token lines, decoded through a
// compiled schema.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/conllab/go-conllu/ir"
	"github.com/conllab/go-conllu/schema"
)

// scanBufSize bounds a single source line.
const scanBufSize = 1 << 20

// Sentences returns a lazy iterator over the sentences of r, decoding token
// lines with the compiled parser of s. The iterator owns per-sentence
// accumulation state and must not be shared between goroutines; restart by
// calling Sentences again with a fresh reader.
func Sentences[R any](r io.Reader, s *schema.Schema[R], opts ...Option) *Iter[R] {
	o := defaultOpts()
	for _, opt := range opts {
		opt(&o)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), scanBufSize)
	return &Iter[R]{
		sc:         sc,
		parseToken: s.Parser(),
		opts:       o,
		docID:      schema.None[string](),
		parID:      schema.None[string](),
	}
}

// All reads every sentence of r into a slice.
func All[R any](r io.Reader, s *schema.Schema[R], opts ...Option) ([]*ir.Sentence[R], error) {
	it := Sentences(r, s, opts...)
	var out []*ir.Sentence[R]
	for it.Next() {
		out = append(out, it.Sentence())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Iter is a pull iterator over parsed sentences.
//
//	it := parse.Sentences(r, sch)
//	for it.Next() {
//	    use(it.Sentence())
//	}
//	if err := it.Err(); err != nil { ... }
type Iter[R any] struct {
	sc         *bufio.Scanner
	parseToken func(line string) (*R, error)
	opts       options

	lineNum int
	cur     *ir.Sentence[R]
	err     error
	done    bool

	// pending block state
	pend      *ir.Sentence[R]
	tokenSeen bool
	startLine int

	// ids inherited across sentences
	docID, parID schema.Optional[string]
}

// Next advances to the next sentence. It returns false at the end of the
// stream or on the first error; consult Err to tell the two apart.
func (it *Iter[R]) Next() bool {
	if it.done {
		return false
	}
	for it.sc.Scan() {
		it.lineNum++
		line := it.sc.Text()

		if strings.TrimSpace(line) == "" {
			if it.pend != nil {
				it.seal(it.lineNum - 1)
				return true
			}
			continue
		}

		if line[0] == it.opts.commentMarker {
			if err := it.acceptComment(line); err != nil {
				return it.fail(err)
			}
			continue
		}

		if err := it.acceptToken(line); err != nil {
			return it.fail(err)
		}
	}
	it.done = true
	if err := it.sc.Err(); err != nil {
		it.err = err
		return false
	}
	// the trailing blank line is not required
	if it.pend != nil {
		it.seal(it.lineNum)
		return true
	}
	return false
}

// Sentence returns the most recently parsed sentence.
func (it *Iter[R]) Sentence() *ir.Sentence[R] { return it.cur }

// Err returns the first error encountered, nil at a clean end of stream.
func (it *Iter[R]) Err() error { return it.err }

func (it *Iter[R]) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}

func (it *Iter[R]) block() *ir.Sentence[R] {
	if it.pend == nil {
		it.pend = &ir.Sentence[R]{}
		it.tokenSeen = false
		it.startLine = it.lineNum
	}
	return it.pend
}

func (it *Iter[R]) acceptComment(line string) error {
	if it.tokenSeen {
		return &Error{
			Line: it.lineNum,
			Text: line,
			Err:  fmt.Errorf("%w: comment after token lines in the same sentence", schema.ErrParse),
		}
	}
	snt := it.block()

	rest := line[1:]
	if key, value, found := cutComment(rest); found {
		snt.Meta().Set(key, schema.Some(value))
	} else if key != "" {
		snt.Meta().Set(key, schema.None[string]())
	}
	return nil
}

// cutComment splits a comment body at its first "=". Without one, the whole
// trimmed body is a singleton key; an all-whitespace body yields no key.
func cutComment(body string) (key, value string, found bool) {
	before, after, found := strings.Cut(body, "=")
	if !found {
		return strings.TrimSpace(body), "", false
	}
	return strings.TrimSpace(before), strings.TrimSpace(after), true
}

func (it *Iter[R]) acceptToken(line string) error {
	snt := it.block()
	it.tokenSeen = true

	rec, err := it.parseToken(line)
	if err != nil {
		return &Error{Line: it.lineNum, Text: line, Err: err}
	}
	snt.Append(rec)
	return nil
}

// seal finishes the pending sentence: fix the line bounds and resolve the
// document and paragraph ids it inherits or declares.
func (it *Iter[R]) seal(endLine int) {
	snt := it.pend
	it.pend = nil
	it.tokenSeen = false

	snt.SetLines(it.startLine, endLine)

	it.docID = effectiveID(snt.Meta(), ir.NewDocIDKey, ir.NewDocKey, it.docID)
	it.parID = effectiveID(snt.Meta(), ir.NewParIDKey, ir.NewParKey, it.parID)
	snt.SetDocID(it.docID)
	snt.SetParID(it.parID)

	it.cur = snt
}

// effectiveID resolves a propagated id: a declared "... id" key wins, the
// bare marker resets to absent, anything else inherits.
func effectiveID(m *ir.Meta, idKey, bareKey string, inherited schema.Optional[string]) schema.Optional[string] {
	if v, ok := m.Get(idKey); ok {
		return v
	}
	if m.Has(bareKey) {
		return schema.None[string]()
	}
	return inherited
}
