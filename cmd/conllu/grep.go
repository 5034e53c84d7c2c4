package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/conllab/go-conllu/conllu"
)

func grep(cfg *GrepConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grep.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: grep requires an expression argument", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: bad expression %q: %v", cli.ErrUsage, args[0], err)
	}
	args = args[1:]

	matches := 0
	err = eachInput(args, func(name string, r io.Reader) error {
		it := conllu.Iter(r)
		for it.Next() {
			snt := it.Sentence()
			hit, err := grepSentence(cfg, cc.Out, program, snt, &matches)
			if err != nil {
				return err
			}
			if hit && cfg.Blocks && !cfg.Count {
				block, err := conllu.Serialize(snt)
				if err != nil {
					return err
				}
				fmt.Fprintf(cc.Out, "%s\n", block)
			}
		}
		if err := it.Err(); err != nil {
			return fmt.Errorf("error reading %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if cfg.Count {
		fmt.Fprintln(cc.Out, matches)
	}
	if matches == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func grepSentence(cfg *GrepConfig, w io.Writer, program *vm.Program, snt *conllu.Sentence, matches *int) (bool, error) {
	hit := false
	for _, tok := range snt.Tokens() {
		out, err := expr.Run(program, tokenEnv(tok))
		if err != nil {
			return hit, fmt.Errorf("error evaluating on token %s: %w", tok.ID, err)
		}
		ok, isBool := out.(bool)
		if !isBool {
			return hit, fmt.Errorf("%w: expression must yield a boolean, got %T", cli.ErrUsage, out)
		}
		if !ok {
			continue
		}
		hit = true
		*matches++
		if cfg.Count || cfg.Blocks {
			continue
		}
		line, err := conllu.SerializeToken(tok)
		if err != nil {
			return hit, err
		}
		fmt.Fprintln(w, line)
	}
	return hit, nil
}

func tokenEnv(tok *conllu.Token) map[string]any {
	feats := make(map[string][]string, len(tok.Feats))
	for key, vals := range tok.Feats {
		vs := vals.Values()
		slices.Sort(vs)
		feats[key] = vs
	}
	misc := make([]string, 0, len(tok.Misc))
	for key := range tok.Misc {
		misc = append(misc, key)
	}
	slices.Sort(misc)
	return map[string]any{
		"id":     string(tok.ID),
		"form":   tok.Form.Or(""),
		"lemma":  tok.Lemma.Or(""),
		"upos":   tok.Upos.Or(""),
		"xpos":   tok.Xpos.Or(""),
		"deprel": tok.Deprel.Or(""),
		"head":   string(tok.Head.Or("")),
		"feats":  feats,
		"misc":   misc,
	}
}
