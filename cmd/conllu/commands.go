package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "conllu").
		WithSynopsis("conllu [opts] command [opts]").
		WithDescription("conllu is a tool for working with column-annotated token corpora.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return conlluMain(cfg, cc, args)
		}).
		WithSubs(
			ValidateCommand(cfg),
			FmtCommand(cfg),
			StatsCommand(cfg),
			GrepCommand(cfg),
			DiffCommand(cfg),
			ExportCommand(cfg))
}

func conlluMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Validate, "validate").
		WithAliases("v", "va").
		WithSynopsis("validate [files]").
		WithDescription("parse corpora and report the first error of each file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [files]").
		WithDescription("reserialize corpora in canonical column order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithSynopsis("stats [-upos] [files]").
		WithDescription("count sentences, tokens, and annotation shapes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}

func GrepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GrepConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Grep, "grep").
		WithAliases("g").
		WithSynopsis("grep <expr> [files]").
		WithDescription(grepDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return grep(cfg, cc, args)
		})
}

const grepDescription = `grep prints the token lines matching an expression.

The expression is evaluated once per token with the variables id, form,
lemma, upos, xpos, deprel, and head bound to the token's columns (absent
columns bind to the empty string), feats bound to the feature map, and
misc bound to the miscellany keys. For example:

  conllu grep 'upos == "VERB" && "Sing" in feats["Number"]' corpus.conllu
  conllu grep -s 'form == lemma' corpus.conllu`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff two corpora after canonical reserialization").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg, Format: "j"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "f",
		Aliases:     []string{"format"},
		Description: "export format: json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.formatOpt, "(format)"),
	})
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("e", "ex").
		WithSynopsis("export [-f json|yaml] [files]").
		WithDescription("export corpora as json or yaml documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}
