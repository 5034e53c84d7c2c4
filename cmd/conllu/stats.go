package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/scott-cotton/cli"

	"github.com/conllab/go-conllu/conllu"
)

type corpusStats struct {
	sentences  int
	words      int
	multiwords int
	emptyNodes int
	docs       map[string]bool
	upos       map[string]int
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	st := &corpusStats{docs: map[string]bool{}, upos: map[string]int{}}
	err = eachInput(args, func(name string, r io.Reader) error {
		it := conllu.Iter(r)
		for it.Next() {
			st.add(it.Sentence())
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	st.report(cc.Out, cfg.Upos)
	return nil
}

func (st *corpusStats) add(snt *conllu.Sentence) {
	st.sentences++
	if id, ok := snt.DocID().Get(); ok {
		st.docs[id] = true
	}
	for _, tok := range snt.Tokens() {
		switch {
		case tok.IsMultiword():
			st.multiwords++
		case tok.IsEmptyNode():
			st.emptyNodes++
		default:
			st.words++
			st.upos[tok.Upos.Or("_")]++
		}
	}
}

func (st *corpusStats) report(w io.Writer, withUpos bool) {
	fmt.Fprintf(w, "sentences:   %d\n", st.sentences)
	fmt.Fprintf(w, "words:       %d\n", st.words)
	fmt.Fprintf(w, "multiwords:  %d\n", st.multiwords)
	fmt.Fprintf(w, "empty nodes: %d\n", st.emptyNodes)
	if len(st.docs) > 0 {
		fmt.Fprintf(w, "documents:   %d\n", len(st.docs))
	}
	if !withUpos {
		return
	}
	tags := make([]string, 0, len(st.upos))
	for tag := range st.upos {
		tags = append(tags, tag)
	}
	slices.SortFunc(tags, func(a, b string) int {
		if c := cmp.Compare(st.upos[b], st.upos[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	fmt.Fprintln(w, "upos:")
	for _, tag := range tags {
		fmt.Fprintf(w, "  %-8s %d\n", tag, st.upos[tag])
	}
}
