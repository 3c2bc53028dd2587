package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"

	"github.com/ksdme/whirl/internal/width"
)

type spinCmd struct {
	Text      string        `arg:"--text,-t" default:"Working" help:"text next to the spinner"`
	Interval  time.Duration `arg:"--interval,-i" default:"80ms" help:"time between frames"`
	Duration  time.Duration `arg:"--duration,-d" default:"3s" help:"how long to spin"`
	Frames    []string      `arg:"--frames" help:"animation frames"`
	Outcome   string        `arg:"--outcome,-o" default:"succeed" help:"succeed, fail, warn, info or stop"`
	Algorithm string        `arg:"--algorithm,-a" default:"wcwidth" env:"WHIRL_ALGORITHM" help:"width algorithm used to count wrapped rows"`
	Color     string        `arg:"--color,-c" help:"color of the final symbol, an ANSI index or hex value"`
}

func (c *spinCmd) run(ctx context.Context) error {
	algorithm, err := width.Lookup(c.Algorithm)
	if err != nil {
		return fmt.Errorf("could not select width algorithm: %w", err)
	}

	d := demo{
		Text:      c.Text,
		Interval:  c.Interval,
		Duration:  c.Duration,
		Frames:    c.Frames,
		Outcome:   c.Outcome,
		Algorithm: algorithm,
		Color:     c.Color,
	}
	return d.play(ctx, os.Stderr, termenv.NewOutput(os.Stderr))
}
