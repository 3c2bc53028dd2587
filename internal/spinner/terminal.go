package spinner

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Control sequences written by the spinner.
const (
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
	ClearLine  = "\r\x1b[K"
	UpLine     = "\x1b[1A"
)

// ColumnsFunc reports the column width of the terminal the spinner writes to,
// or false when it is unknown.
type ColumnsFunc func() (int, bool)

// Columns returns a ColumnsFunc with a fixed width.
func Columns(n int) ColumnsFunc {
	return func() (int, bool) { return n, n > 0 }
}

// terminalColumns asks the terminal behind w for its width. Anything that is
// not a terminal file has no width.
func terminalColumns(w io.Writer) ColumnsFunc {
	return func() (int, bool) {
		f, ok := w.(*os.File)
		if !ok {
			return 0, false
		}
		if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
			return 0, false
		}

		cols, _, err := term.GetSize(int(f.Fd()))
		if err != nil || cols <= 0 {
			return 0, false
		}
		return cols, true
	}
}

// ColorFormatter colors the symbol using the color profile of out. color is
// anything termenv understands: an ANSI index ("2") or a hex value ("#00ff00").
func ColorFormatter(out *termenv.Output, color string) Formatter {
	return func(symbol string) string {
		return out.String(symbol).Foreground(out.Color(color)).String()
	}
}
