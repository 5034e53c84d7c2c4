package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/conllab/go-conllu/conllu"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two corpus arguments", cli.ErrUsage)
	}
	cfg.setColors(cc)

	a, err := normalized(args[0])
	if err != nil {
		return err
	}
	b, err := normalized(args[1])
	if err != nil {
		return err
	}

	diffCfg := diffpatch.New()
	aRunes, bRunes, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(aRunes, bRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)

	changed := printDiffs(cc.Out, diffs)
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// normalized reserializes a corpus so that two files differing only in
// pair order or column quirks compare equal line by line.
func normalized(arg string) (string, error) {
	snts, err := loadArg(arg)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := conllu.Write(&buf, snts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printDiffs(w io.Writer, diffs []diffpatch.Diff) bool {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	changed := false
	for _, d := range diffs {
		var mark string
		var paint *color.Color
		switch d.Type {
		case diffpatch.DiffDelete:
			mark, paint, changed = "-", del, true
		case diffpatch.DiffInsert:
			mark, paint, changed = "+", ins, true
		default:
			mark = " "
		}
		for line := range strings.SplitSeq(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if paint != nil {
				paint.Fprintf(w, "%s%s\n", mark, line)
				continue
			}
			fmt.Fprintf(w, "%s%s\n", mark, line)
		}
	}
	return changed
}
