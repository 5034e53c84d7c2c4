package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/conllab/go-conllu/conllu"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		snts, err := loadArg(arg)
		if err != nil {
			return err
		}
		if !cfg.Write {
			if err := conllu.Write(cc.Out, snts); err != nil {
				return err
			}
			continue
		}
		var buf bytes.Buffer
		if err := conllu.Write(&buf, snts); err != nil {
			return err
		}
		if err := os.WriteFile(arg, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error rewriting %s: %w", arg, err)
		}
	}
	return nil
}
