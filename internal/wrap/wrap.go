// Package wrap counts the terminal rows a block of text occupies once the
// terminal soft-wraps it at a column width.
package wrap

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ksdme/whirl/internal/width"
)

// Unbounded marks a terminal with no known column width. Text only breaks on
// line feeds.
const Unbounded = math.MaxInt

var ErrInvalidColumns = errors.New("column width must be positive")

// Counter counts rows using a width algorithm.
type Counter struct {
	Algorithm width.Algorithm
}

// Count returns the number of rows text occupies on a terminal that is
// columns wide. Every line-feed separated segment takes at least one row.
func (c Counter) Count(text string, columns int) (int, error) {
	if columns == Unbounded {
		return strings.Count(text, "\n") + 1, nil
	}
	if columns <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidColumns, columns)
	}

	alg := c.Algorithm
	if alg == nil {
		alg = width.Wcwidth
	}

	rows := 0
	for {
		line, rest, found := strings.Cut(text, "\n")
		w := alg.StringWidth(line)
		n := w / columns
		if w%columns != 0 {
			n++
		}
		rows += max(n, 1)
		if !found {
			break
		}
		text = rest
	}
	return rows, nil
}

// Count counts rows with the default width algorithm.
func Count(text string, columns int) (int, error) {
	return Counter{}.Count(text, columns)
}
