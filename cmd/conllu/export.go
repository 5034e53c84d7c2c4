package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/conllab/go-conllu/conllu"
)

type exportToken struct {
	ID     string              `json:"id" yaml:"id"`
	Form   string              `json:"form,omitempty" yaml:"form,omitempty"`
	Lemma  string              `json:"lemma,omitempty" yaml:"lemma,omitempty"`
	Upos   string              `json:"upos,omitempty" yaml:"upos,omitempty"`
	Xpos   string              `json:"xpos,omitempty" yaml:"xpos,omitempty"`
	Feats  map[string][]string `json:"feats,omitempty" yaml:"feats,omitempty"`
	Head   string              `json:"head,omitempty" yaml:"head,omitempty"`
	Deprel string              `json:"deprel,omitempty" yaml:"deprel,omitempty"`
	Deps   map[string][]string `json:"deps,omitempty" yaml:"deps,omitempty"`
	Misc   map[string][]string `json:"misc,omitempty" yaml:"misc,omitempty"`
}

type exportSentence struct {
	Meta   map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
	Tokens []exportToken     `json:"tokens" yaml:"tokens"`
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	var docs []exportSentence
	err = eachInput(args, func(name string, r io.Reader) error {
		snts, err := conllu.Load(r)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", name, err)
		}
		for _, snt := range snts {
			docs = append(docs, exportOne(snt))
		}
		return nil
	})
	if err != nil {
		return err
	}

	var out []byte
	switch cfg.Format {
	case "y":
		out, err = yaml.Marshal(docs)
	default:
		out, err = json.MarshalIndent(docs, "", "  ")
		out = append(out, '\n')
	}
	if err != nil {
		return fmt.Errorf("error encoding export: %w", err)
	}
	_, err = cc.Out.Write(out)
	return err
}

func exportOne(snt *conllu.Sentence) exportSentence {
	meta := snt.Meta()
	doc := exportSentence{Tokens: make([]exportToken, 0, snt.Len())}
	if meta.Len() > 0 {
		doc.Meta = make(map[string]string, meta.Len())
		for _, key := range meta.Keys() {
			v, _ := meta.Get(key)
			doc.Meta[key] = v.Or("")
		}
	}
	for _, tok := range snt.Tokens() {
		et := exportToken{
			ID:     string(tok.ID),
			Form:   tok.Form.Or(""),
			Lemma:  tok.Lemma.Or(""),
			Upos:   tok.Upos.Or(""),
			Xpos:   tok.Xpos.Or(""),
			Head:   string(tok.Head.Or("")),
			Deprel: tok.Deprel.Or(""),
		}
		if len(tok.Feats) > 0 {
			et.Feats = make(map[string][]string, len(tok.Feats))
			for key, vals := range tok.Feats {
				et.Feats[key] = vals.Values()
			}
		}
		if len(tok.Deps) > 0 {
			et.Deps = make(map[string][]string, len(tok.Deps))
			for id, rel := range tok.Deps {
				et.Deps[string(id)] = rel
			}
		}
		if len(tok.Misc) > 0 {
			et.Misc = make(map[string][]string, len(tok.Misc))
			for key, vals := range tok.Misc {
				var vs []string
				if set, ok := vals.Get(); ok {
					vs = set.Values()
				}
				et.Misc[key] = vs
			}
		}
		doc.Tokens = append(doc.Tokens, et)
	}
	return doc
}
