package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ksdme/whirl/internal/iochan"
	"github.com/ksdme/whirl/internal/spinner"
	"github.com/ksdme/whirl/internal/width"
)

type runCmd struct {
	Interval  time.Duration `arg:"--interval,-i" default:"80ms" help:"time between frames"`
	Algorithm string        `arg:"--algorithm,-a" default:"wcwidth" env:"WHIRL_ALGORITHM" help:"width algorithm used to count wrapped rows"`
	Quiet     bool          `arg:"--quiet,-q" help:"do not print the captured output"`
	Command   []string      `arg:"positional,required" help:"command and its arguments"`
}

func (c *runCmd) run(ctx context.Context) error {
	algorithm, err := width.Lookup(c.Algorithm)
	if err != nil {
		return fmt.Errorf("could not select width algorithm: %w", err)
	}

	name := filepath.Base(c.Command[0])
	spin, err := spinner.New(
		spinner.Text(fmt.Sprintf("running %s", name)),
		spinner.WithWriter(os.Stderr),
		spinner.WithAlgorithm(algorithm),
	)
	if err != nil {
		return fmt.Errorf("could not create spinner: %w", err)
	}

	var output bytes.Buffer
	total, err := capture(ctx, c.Command, &output, func(total uint64) {
		spin.SetText(fmt.Sprintf("running %s (%s)", name, humanize.Bytes(total)))
	}, func() error {
		return spin.Start(c.Interval)
	})
	if err != nil {
		spin.FailText(fmt.Sprintf("%s failed: %s", name, err))
	} else {
		spin.SucceedText(fmt.Sprintf("%s finished (%s)", name, humanize.Bytes(total)))
	}

	if !c.Quiet {
		_, _ = io.Copy(os.Stdout, &output)
	}
	if err != nil {
		return fmt.Errorf("could not run %s: %w", name, err)
	}
	return nil
}

// Run the command with stdout and stderr merged into w, reporting the number of
// bytes captured so far after every chunk. started runs once the child is up.
func capture(ctx context.Context, command []string, w io.Writer, progress func(uint64), started func() error) (uint64, error) {
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("could not start command: %w", err)
	}
	slog.Debug("started command", "pid", cmd.Process.Pid, "command", command)

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		_ = pw.Close()
		done <- err
	}()

	if started != nil {
		if err := started(); err != nil {
			slog.Warn("could not start spinner", "err", err)
		}
	}

	total, copyErr := iochan.Copy(w, iochan.Read(ctx, pr, 4096), progress)
	// Unblock the child if the copy stopped early.
	_ = pr.Close()

	err := <-done
	slog.Debug("command exited", "command", command, "bytes", total, "err", err)
	if err != nil {
		return total, err
	}
	return total, copyErr
}
