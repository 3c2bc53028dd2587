package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexflint/go-arg"
)

type args struct {
	Spin    *spinCmd  `arg:"subcommand:spin" help:"animate a spinner and end it with an outcome"`
	Width   *widthCmd `arg:"subcommand:width" help:"print the display width of text"`
	Run     *runCmd   `arg:"subcommand:run" help:"run a command behind a spinner"`
	Serve   *serveCmd `arg:"subcommand:serve" help:"serve spinner demos over ssh"`
	Verbose bool      `arg:"--verbose,-v" env:"WHIRL_VERBOSE" help:"enable debug logs"`
}

func (args) Description() string {
	return "whirl draws terminal spinners that erase cleanly, even across wrapped lines.\n"
}

func run() error {
	var args args
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.Fail("missing subcommand")
	}

	if args.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case args.Spin != nil:
		return args.Spin.run(ctx)
	case args.Width != nil:
		return args.Width.run(os.Stdout)
	case args.Run != nil:
		return args.Run.run(ctx)
	case args.Serve != nil:
		return args.Serve.run(ctx)
	}
	return fmt.Errorf("unknown subcommand")
}

func main() {
	err := run()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
