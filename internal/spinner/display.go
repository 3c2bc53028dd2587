package spinner

import "time"

// Formatter decorates the spinner symbol before it is written, usually with
// color.
type Formatter func(symbol string) string

// Display describes what the spinner shows. Nil fields leave the current value
// unchanged.
type Display struct {
	Text      *string
	Symbol    *string
	Formatter Formatter
}

// Text returns a Display that only sets the text.
func Text(text string) Display {
	return Display{Text: &text}
}

// WithSymbol returns a copy of d that sets the symbol.
func (d Display) WithSymbol(symbol string) Display {
	d.Symbol = &symbol
	return d
}

// WithFormatter returns a copy of d that sets the symbol formatter.
func (d Display) WithFormatter(f Formatter) Display {
	d.Formatter = f
	return d
}

// Symbols are the glyphs shown when the spinner ends with an outcome.
type Symbols struct {
	Succeed string
	Fail    string
	Warn    string
	Info    string
}

// merge fills empty fields of s from defaults.
func (s Symbols) merge(defaults Symbols) Symbols {
	if s.Succeed == "" {
		s.Succeed = defaults.Succeed
	}
	if s.Fail == "" {
		s.Fail = defaults.Fail
	}
	if s.Warn == "" {
		s.Warn = defaults.Warn
	}
	if s.Info == "" {
		s.Info = defaults.Info
	}
	return s
}

const DefaultInterval = 50 * time.Millisecond

var (
	// https://github.com/sindresorhus/cli-spinners "dots"
	DefaultFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

	DefaultSymbols = Symbols{
		Succeed: "✔",
		Fail:    "✖",
		Warn:    "!",
		Info:    "ℹ",
	}
)
