package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/alexflint/go-arg"
	"github.com/gliderlabs/ssh"
	"github.com/muesli/termenv"

	"github.com/ksdme/whirl/internal/config"
	"github.com/ksdme/whirl/internal/keys"
	"github.com/ksdme/whirl/internal/width"
)

type serveCmd struct{}

// Handle a connection.
func handler(config *config.Config, algorithm width.Algorithm, s ssh.Session) {
	log := slog.With("session", keys.SessionID(s.PublicKey()), "user", s.User())
	log.Debug("session opened", "command", s.Command())
	defer log.Debug("session closed")

	// Calling s.Exit does not seem to cancel the context, so, we need to manually
	// store that intent and return early if parsing arguments fail.
	exited := false
	exit := func(i int) {
		_ = s.Exit(i)
		exited = true
	}

	var args struct {
		Text    string   `arg:"--text,-t" default:"Working" help:"text next to the spinner"`
		Outcome string   `arg:"--outcome,-o" default:"succeed" help:"succeed, fail, warn, info or stop"`
		Frames  []string `arg:"--frames" help:"animation frames"`
		Color   string   `arg:"--color,-c" default:"2" help:"color of the final symbol"`
	}
	parser, err := arg.NewParser(arg.Config{
		IgnoreEnv: true,
		Program:   "whirl",
		Out:       s.Stderr(),
		Exit:      exit,
	}, &args)
	if err != nil {
		log.Error("could not initialize arg parser", "err", err)
		_, _ = io.WriteString(s.Stderr(), fmt.Sprintln("internal error"))
		return
	}

	parser.MustParse(s.Command())
	if exited {
		return
	}
	if err := checkOutcome(args.Outcome); err != nil {
		parser.Fail(err.Error())
		return
	}

	// Without a pty there is no window, so nothing wraps.
	var cols atomic.Int64
	profile := termenv.Ascii
	if pty, windows, active := s.Pty(); active {
		profile = termenv.ANSI256
		cols.Store(int64(pty.Window.Width))
		go func() {
			for window := range windows {
				cols.Store(int64(window.Width))
			}
		}()
	}
	columns := func() (int, bool) {
		n := int(cols.Load())
		return n, n > 0
	}

	d := demo{
		Text:      strings.TrimSpace(args.Text),
		Interval:  config.Interval,
		Duration:  config.DemoDuration,
		Frames:    args.Frames,
		Outcome:   args.Outcome,
		Algorithm: algorithm,
		Color:     args.Color,
		Columns:   columns,
		Logger:    log,
	}
	colors := termenv.NewOutput(s.Stderr(), termenv.WithProfile(profile))
	if err := d.play(s.Context(), s.Stderr(), colors); err != nil {
		log.Debug("demo failed", "err", err)
		_, _ = io.WriteString(s.Stderr(), fmt.Sprintln(err.Error()))
		_ = s.Exit(1)
		return
	}
	_ = s.Exit(0)
}

func (serveCmd) run(ctx context.Context) error {
	config, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("could not load configuration: %w", err)
	}

	algorithm, err := width.Lookup(config.Algorithm)
	if err != nil {
		return fmt.Errorf("could not select width algorithm: %w", err)
	}

	var authorized keys.Authorized
	if config.AuthorizedKeysFile != "" {
		authorized, err = keys.LoadAuthorizedKeys(config.AuthorizedKeysFile)
		if err != nil {
			return fmt.Errorf("could not load authorized keys: %w", err)
		}
		slog.Info("loaded authorized keys", "count", len(authorized))
	}

	server := &ssh.Server{
		Addr:        config.BindAddr,
		MaxTimeout:  config.MaxTimeout,
		IdleTimeout: config.IdleTimeout,
		Handler:     func(s ssh.Session) { handler(config, algorithm, s) },
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return authorized.Allows(key)
		},
	}
	err = ssh.HostKeyFile(config.HostKeyFile)(server)
	if err != nil {
		return fmt.Errorf("could not add hostkey to the server: %w", err)
	}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	slog.Info("listening", "addr", config.BindAddr, "algorithm", algorithm.Name())
	if err = server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}
