package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/conllab/go-conllu/conllu"
	"github.com/conllab/go-conllu/parse"
)

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.setColors(cc)
	failMark := color.New(color.FgRed, color.Bold)
	okMark := color.New(color.FgGreen)

	bad := 0
	err = eachInput(args, func(name string, r io.Reader) error {
		snts, tokens := 0, 0
		it := conllu.Iter(r)
		for it.Next() {
			snts++
			tokens += it.Sentence().Len()
		}
		if err := it.Err(); err != nil {
			bad++
			var perr *parse.Error
			if errors.As(err, &perr) {
				failMark.Fprintf(os.Stderr, "%s:%d:", name, perr.Line)
				fmt.Fprintf(os.Stderr, " %v\n", perr.Err)
			} else {
				failMark.Fprintf(os.Stderr, "%s:", name)
				fmt.Fprintf(os.Stderr, " %v\n", err)
			}
			return nil
		}
		if !cfg.Quiet {
			okMark.Fprintf(cc.Out, "%s ok", name)
			fmt.Fprintf(cc.Out, ": %d sentences, %d tokens\n", snts, tokens)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
