package main

import (
	"fmt"
	"io"

	"github.com/ksdme/whirl/internal/width"
	"github.com/ksdme/whirl/internal/wrap"
)

type widthCmd struct {
	Text      []string `arg:"positional,required" help:"text to measure"`
	Columns   int      `arg:"--columns,-w" help:"terminal width used to count rows, unbounded when unset"`
	Algorithm string   `arg:"--algorithm,-a" default:"wcwidth" help:"width algorithm"`
	All       bool     `arg:"--all" help:"measure with every algorithm"`
}

func (c *widthCmd) run(w io.Writer) error {
	columns := c.Columns
	if columns == 0 {
		columns = wrap.Unbounded
	}

	algorithms := width.All()
	if !c.All {
		algorithm, err := width.Lookup(c.Algorithm)
		if err != nil {
			return fmt.Errorf("could not select width algorithm: %w", err)
		}
		algorithms = []width.Algorithm{algorithm}
	}

	for _, text := range c.Text {
		for _, algorithm := range algorithms {
			rows, err := wrap.Counter{Algorithm: algorithm}.Count(text, columns)
			if err != nil {
				return fmt.Errorf("could not count rows: %w", err)
			}

			if c.All {
				_, err = fmt.Fprintf(w, "%-14s %4d %4d %q\n", algorithm.Name(), algorithm.StringWidth(text), rows, text)
			} else {
				_, err = fmt.Fprintf(w, "%d %d %q\n", algorithm.StringWidth(text), rows, text)
			}
			if err != nil {
				return fmt.Errorf("could not write result: %w", err)
			}
		}
	}
	return nil
}
