package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// setColors pins the color package to the command output: on for terminals
// and for -color, off otherwise.
func (cfg *MainConfig) setColors(cc *cli.Context) {
	if cfg.Color {
		color.NoColor = false
		return
	}
	f, ok := cc.Out.(*os.File)
	color.NoColor = !ok || !isatty.IsTerminal(f.Fd())
}

type ValidateConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='report only failures'"`

	Validate *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='rewrite files in place instead of printing'"`

	Fmt *cli.Command
}

type StatsConfig struct {
	*MainConfig
	Upos bool `cli:"name=upos desc='include a upos frequency table'"`

	Stats *cli.Command
}

type GrepConfig struct {
	*MainConfig
	Blocks bool `cli:"name=s desc='print whole sentence blocks instead of token lines'"`
	Count  bool `cli:"name=c desc='print only the match count'"`

	Grep *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Format string

	Export *cli.Command
}

func (cfg *ExportConfig) formatOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "json", "j", "yaml", "y":
		cfg.Format = a[:1]
		return a, nil
	}
	return nil, fmt.Errorf("%w: unknown export format %q", cli.ErrUsage, a)
}
