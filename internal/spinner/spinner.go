package spinner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/ksdme/whirl/internal/width"
	"github.com/ksdme/whirl/internal/wrap"
)

var (
	ErrNoFrames        = errors.New("spinner needs at least one frame")
	ErrInvalidInterval = errors.New("spinner interval must be positive")
	ErrAlreadyRunning  = errors.New("spinner is already running")
)

// A spinner that animates a symbol next to a message and, every time it
// redraws, erases exactly the rows it wrote last time, including rows created
// by the terminal wrapping long text.
type Spinner struct {
	mu sync.Mutex

	frames    []string
	symbols   Symbols
	output    *termenv.Output
	columns   ColumnsFunc
	counter   wrap.Counter
	scheduler Scheduler
	log       *slog.Logger

	text      string
	symbol    string
	formatter Formatter
	// Index into frames of the symbol on screen, -1 for an outcome symbol.
	frame int
	next  int

	running   bool
	task      *tickTask
	width     int
	lastLines int
	// Row counts per frame index for the current text and formatter.
	lines map[int]int
}

type Option func(*Spinner)

// WithFrames replaces the animation frames.
func WithFrames(frames ...string) Option {
	return func(s *Spinner) { s.frames = frames }
}

// WithSymbols overrides outcome symbols. Empty fields keep their defaults.
func WithSymbols(symbols Symbols) Option {
	return func(s *Spinner) { s.symbols = symbols.merge(DefaultSymbols) }
}

// WithWriter sets where the spinner is drawn, os.Stdout by default.
func WithWriter(w io.Writer) Option {
	return func(s *Spinner) {
		s.output = termenv.NewOutput(w)
		s.columns = terminalColumns(w)
	}
}

// WithColumns overrides how the terminal width is discovered on Start.
func WithColumns(columns ColumnsFunc) Option {
	return func(s *Spinner) { s.columns = columns }
}

// WithAlgorithm sets the width algorithm used to count wrapped rows.
func WithAlgorithm(a width.Algorithm) Option {
	return func(s *Spinner) { s.counter.Algorithm = a }
}

func WithScheduler(scheduler Scheduler) Option {
	return func(s *Spinner) { s.scheduler = scheduler }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Spinner) { s.log = log }
}

// New creates an idle spinner showing display. A symbol in display is ignored,
// the spinner always starts on its first frame.
func New(display Display, opts ...Option) (*Spinner, error) {
	s := &Spinner{
		frames:    DefaultFrames,
		symbols:   DefaultSymbols,
		output:    termenv.NewOutput(os.Stdout),
		columns:   terminalColumns(os.Stdout),
		counter:   wrap.Counter{Algorithm: width.Wcwidth},
		scheduler: TickerScheduler{},
		log:       slog.Default(),
		width:     wrap.Unbounded,
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.frames) == 0 {
		return nil, ErrNoFrames
	}
	s.frames = append([]string(nil), s.frames...)

	display.Symbol = nil
	s.apply(display)
	s.symbol = s.frames[0]
	s.frame = 0

	return s, nil
}

// Start begins animating, one frame every interval. The terminal width is read
// once here. Starting a running spinner returns ErrAlreadyRunning and leaves
// the current animation untouched.
func (s *Spinner) Start(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	s.width = wrap.Unbounded
	if cols, ok := s.columns(); ok && cols > 0 {
		s.width = cols
	}
	s.next = 0
	s.lines = nil
	s.running = true

	task := &tickTask{spinner: s}
	task.handle = s.scheduler.Every(interval, task.run)
	s.task = task

	s.log.Debug("spinner started", "interval", interval, "columns", s.width)
	return nil
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// SetText replaces the message, redrawing right away when running.
func (s *Spinner) SetText(text string) {
	s.SetDisplay(Text(text))
}

// SetDisplay updates the text, symbol and formatter. Setting a symbol ends the
// spinner: the line is drawn one last time with that symbol and kept.
func (s *Spinner) SetDisplay(d Display) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(d)
	if d.Symbol != nil {
		s.render()
		s.end(true)
		return
	}
	if s.running {
		s.render()
	}
}

func (s *Spinner) Succeed(d Display) { s.SetDisplay(d.WithSymbol(s.symbols.Succeed)) }
func (s *Spinner) Fail(d Display)    { s.SetDisplay(d.WithSymbol(s.symbols.Fail)) }
func (s *Spinner) Warn(d Display)    { s.SetDisplay(d.WithSymbol(s.symbols.Warn)) }
func (s *Spinner) Info(d Display)    { s.SetDisplay(d.WithSymbol(s.symbols.Info)) }

func (s *Spinner) SucceedText(text string) { s.Succeed(Text(text)) }
func (s *Spinner) FailText(text string)    { s.Fail(Text(text)) }
func (s *Spinner) WarnText(text string)    { s.Warn(Text(text)) }
func (s *Spinner) InfoText(text string)    { s.Info(Text(text)) }

// Stop erases the spinner and everything it wrote. Stopping an idle spinner
// does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	var b strings.Builder
	s.erase(&b)
	s.write(b.String())
	s.end(false)
}

func (s *Spinner) apply(d Display) {
	if d.Text != nil {
		s.text = *d.Text
	}
	if d.Symbol != nil {
		s.symbol = *d.Symbol
		s.frame = -1
	}
	if d.Formatter != nil {
		s.formatter = d.Formatter
	}
	s.lines = nil
}

func (s *Spinner) tick() {
	s.frame = s.next
	s.symbol = s.frames[s.frame]
	s.next = (s.next + 1) % len(s.frames)
	s.render()
}

// render erases the rows of the previous frame and writes the current one,
// all in a single write.
func (s *Spinner) render() {
	symbol := s.symbol
	if s.formatter != nil {
		symbol = s.formatter(symbol)
	}
	line := s.text
	if symbol != "" {
		line = symbol + " " + s.text
	}

	var b strings.Builder
	s.erase(&b)
	b.WriteString(HideCursor)
	b.WriteString(line)
	s.write(b.String())

	s.lastLines = s.rows(line)
}

// erase clears every row written by the last render and leaves the cursor at
// the start of the topmost one.
func (s *Spinner) erase(b *strings.Builder) {
	for i := 0; i < s.lastLines-1; i++ {
		b.WriteString(ClearLine)
		b.WriteString(UpLine)
	}
	b.WriteString(ClearLine)
}

func (s *Spinner) rows(line string) int {
	if s.frame >= 0 {
		if n, ok := s.lines[s.frame]; ok {
			return n
		}
	}

	n, err := s.counter.Count(line, s.width)
	if err != nil {
		s.log.Warn("could not count spinner rows", "err", err)
		n = strings.Count(line, "\n") + 1
	}

	if s.frame >= 0 {
		if s.lines == nil {
			s.lines = make(map[int]int, len(s.frames))
		}
		s.lines[s.frame] = n
	}
	return n
}

func (s *Spinner) write(out string) {
	if _, err := s.output.WriteString(out); err != nil {
		s.log.Warn("could not write spinner output", "err", err)
	}
}

// end cancels the animation and restores the cursor. The text and formatter
// survive so a restarted spinner shows the same message.
func (s *Spinner) end(newline bool) {
	if s.task != nil {
		s.task.handle.Cancel()
		s.task = nil
	}

	out := ShowCursor
	if newline {
		out += "\n"
	}
	s.write(out)

	if s.running {
		s.log.Debug("spinner stopped", "symbol", s.symbol)
	}
	s.running = false
	s.lastLines = 0
	s.lines = nil
	s.symbol = s.frames[0]
	s.frame = 0
}

// tickTask is the scheduled job of one Start. A task that has been replaced
// or cancelled never draws, even if its scheduler fires late.
type tickTask struct {
	spinner *Spinner
	handle  Task
}

func (t *tickTask) run() {
	s := t.spinner
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.task != t || !s.running {
		return
	}
	s.tick()
}
