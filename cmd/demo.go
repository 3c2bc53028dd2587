package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"

	"github.com/ksdme/whirl/internal/spinner"
	"github.com/ksdme/whirl/internal/width"
)

var outcomes = []string{"succeed", "fail", "warn", "info", "stop"}

type demo struct {
	Text      string
	Interval  time.Duration
	Duration  time.Duration
	Frames    []string
	Outcome   string
	Algorithm width.Algorithm
	Color     string
	Columns   spinner.ColumnsFunc
	Logger    *slog.Logger
}

func checkOutcome(outcome string) error {
	for _, o := range outcomes {
		if o == outcome {
			return nil
		}
	}
	return fmt.Errorf("unknown outcome %q, expected one of %v", outcome, outcomes)
}

// Spin on w for the demo duration and then end with the outcome. Cancelling
// the context ends the spinner early with a warning.
func (d demo) play(ctx context.Context, w io.Writer, colors *termenv.Output) error {
	if err := checkOutcome(d.Outcome); err != nil {
		return err
	}

	opts := []spinner.Option{
		spinner.WithWriter(w),
		spinner.WithAlgorithm(d.Algorithm),
	}
	if len(d.Frames) > 0 {
		opts = append(opts, spinner.WithFrames(d.Frames...))
	}
	if d.Columns != nil {
		opts = append(opts, spinner.WithColumns(d.Columns))
	}
	if d.Logger != nil {
		opts = append(opts, spinner.WithLogger(d.Logger))
	}

	spin, err := spinner.New(spinner.Text(d.Text), opts...)
	if err != nil {
		return fmt.Errorf("could not create spinner: %w", err)
	}
	if err := spin.Start(d.Interval); err != nil {
		return fmt.Errorf("could not start spinner: %w", err)
	}

	final := spinner.Text(d.Text)
	if d.Color != "" {
		final = final.WithFormatter(spinner.ColorFormatter(colors, d.Color))
	}

	select {
	case <-time.After(d.Duration):
	case <-ctx.Done():
		spin.WarnText(d.Text)
		return nil
	}

	switch d.Outcome {
	case "succeed":
		spin.Succeed(final)
	case "fail":
		spin.Fail(final)
	case "warn":
		spin.Warn(final)
	case "info":
		spin.Info(final)
	case "stop":
		spin.Stop()
	}
	return nil
}
