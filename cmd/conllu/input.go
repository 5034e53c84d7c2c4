package main

import (
	"fmt"
	"io"
	"os"

	"github.com/conllab/go-conllu/conllu"
)

// eachInput runs fn once per argument, opening each as a file. No arguments
// or "-" mean stdin.
func eachInput(args []string, fn func(name string, r io.Reader) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if arg == "-" {
			if err := fn("stdin", os.Stdin); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		err = fn(arg, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func loadArg(arg string) ([]*conllu.Sentence, error) {
	if arg == "-" {
		return conllu.Load(os.Stdin)
	}
	snts, err := conllu.LoadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", arg, err)
	}
	return snts, nil
}
