// Package width measures how many terminal columns a string occupies.
//
// The default measurement is a wcwidth-style engine extended for ANSI escape
// sequences, emoji sequences and combining marks:
//
//	width.StringWidth("\x1b[31mhello\x1b[0m") // 5
//	width.StringWidth("👩‍👩‍👦‍👦")                 // 2
//	width.StringWidth("古池や")                 // 6
//
// Other measurements are available as an Algorithm and can be looked up by
// name, which is how the spinner and the command line pick one.
package width

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

var ErrUnknownAlgorithm = errors.New("unknown width algorithm")

// Algorithm measures the display width of a string. Implementations must be
// pure and treat ANSI escape sequences as zero width.
type Algorithm interface {
	Name() string
	StringWidth(s string) int
}

var (
	// Wcwidth is the default engine, measuring by Unicode scalar value.
	Wcwidth Algorithm = scannerAlgorithm{name: "wcwidth"}

	// WcwidthUTF16 is the default engine measuring unmatched characters per
	// UTF-16 storage unit, the way engines iterating over UTF-16 strings do.
	WcwidthUTF16 Algorithm = scannerAlgorithm{name: "wcwidth-utf16", scanner: Scanner{UTF16: true}}

	// GoRuneWidth measures with github.com/mattn/go-runewidth.
	GoRuneWidth Algorithm = strippedAlgorithm{name: "runewidth", measure: runewidth.StringWidth}

	// Grapheme measures grapheme clusters with github.com/rivo/uniseg.
	Grapheme Algorithm = strippedAlgorithm{name: "uniseg", measure: uniseg.StringWidth}

	// Uniwidth measures with github.com/unilibs/uniwidth.
	Uniwidth Algorithm = strippedAlgorithm{name: "uniwidth", measure: uniwidth.StringWidth}
)

var algorithms = []Algorithm{Wcwidth, WcwidthUTF16, GoRuneWidth, Grapheme, Uniwidth}

// StringWidth returns the number of columns s occupies using Wcwidth.
func StringWidth(s string) int {
	return Wcwidth.StringWidth(s)
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

// Names lists the registered algorithm names, default first.
func Names() []string {
	names := make([]string, 0, len(algorithms))
	for _, a := range algorithms {
		names = append(names, a.Name())
	}
	return names
}

// All returns every registered algorithm, default first.
func All() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// StripANSI removes every escape sequence the Scanner recognizes.
func StripANSI(s string) string {
	if strings.IndexByte(s, 0x1b) < 0 && !strings.Contains(s, "\u009b") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for pos := 0; pos < len(s); {
		end, ok := MatchANSI(s, pos)
		if ok {
			pos = end
			continue
		}
		b.WriteByte(s[pos])
		pos++
	}
	return b.String()
}

type scannerAlgorithm struct {
	name    string
	scanner Scanner
}

func (a scannerAlgorithm) Name() string { return a.name }

func (a scannerAlgorithm) StringWidth(s string) int {
	return a.scanner.Width(s)
}

// strippedAlgorithm hands the text to a third-party measurement once escape
// sequences are removed, since none of them understand ANSI.
type strippedAlgorithm struct {
	name    string
	measure func(string) int
}

func (a strippedAlgorithm) Name() string { return a.name }

func (a strippedAlgorithm) StringWidth(s string) int {
	return a.measure(StripANSI(s))
}
