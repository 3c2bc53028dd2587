package width

import (
	"regexp"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Kind classifies a run of text found by the Scanner.
type Kind int

const (
	SingleUnit Kind = iota
	AnsiEscape
	EmojiCluster
	CombiningMarks
)

func (k Kind) String() string {
	switch k {
	case AnsiEscape:
		return "ansi"
	case EmojiCluster:
		return "emoji"
	case CombiningMarks:
		return "marks"
	default:
		return "unit"
	}
}

// Run is a contiguous slice text[Start:End] and the columns it occupies.
type Run struct {
	Kind  Kind
	Start int
	End   int
	Width int
}

const (
	emojiWidth = 2

	zwj  = '\u200d'
	vs16 = '\ufe0f'
)

// Escape introducer (ESC or C1 CSI), optional parameters, one final byte.
var ansiPattern = regexp.MustCompile("^[\x1b\u009b][\\[()#;?]*(?:[0-9]{1,4}(?:;[0-9]{0,4})*)?[0-9A-ORZcf-nqry=><]")

// Scanner splits text into runs, left to right, without any state of its own:
// every call takes the text and the offset to scan from.
//
// The zero value measures unmatched characters by Unicode scalar value. With
// UTF16 set, a character outside the Basic Multilingual Plane that matches no
// pattern is measured as its two UTF-16 surrogate units instead, each one
// column wide.
type Scanner struct {
	UTF16 bool
}

// Scan returns the run starting at pos. Patterns are tried in a fixed order:
// escape sequence, emoji sequence, combining marks. When none matches the
// run is a single character classified by RuneWidth. pos must be < len(text).
func (s Scanner) Scan(text string, pos int) Run {
	if b := text[pos]; b >= 0x20 && b < 0x7f {
		return Run{Kind: SingleUnit, Start: pos, End: pos + 1, Width: 1}
	}
	if end, ok := MatchANSI(text, pos); ok {
		return Run{Kind: AnsiEscape, Start: pos, End: end}
	}
	if end, ok := MatchEmoji(text, pos); ok {
		return Run{Kind: EmojiCluster, Start: pos, End: end, Width: emojiWidth}
	}
	if end, ok := MatchMarks(text, pos); ok {
		return Run{Kind: CombiningMarks, Start: pos, End: end}
	}

	r, size := utf8.DecodeRuneInString(text[pos:])
	w := RuneWidth(r)
	if s.UTF16 && r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		w = RuneWidth(hi) + RuneWidth(lo)
	}
	return Run{Kind: SingleUnit, Start: pos, End: pos + size, Width: w}
}

// Width sums the widths of all runs in text.
func (s Scanner) Width(text string) int {
	w := 0
	for pos := 0; pos < len(text); {
		run := s.Scan(text, pos)
		w += run.Width
		pos = run.End
	}
	return w
}

// MatchANSI matches an ANSI/CSI escape sequence at pos and returns its end.
func MatchANSI(text string, pos int) (int, bool) {
	if pos >= len(text) {
		return pos, false
	}
	if b := text[pos]; b != 0x1b && b != 0xc2 {
		return pos, false
	}
	loc := ansiPattern.FindStringIndex(text[pos:])
	if loc == nil {
		return pos, false
	}
	return pos + loc[1], true
}

// MatchEmoji matches one emoji element at pos, optionally chained to more
// elements by zero-width joiners, and returns the end of the sequence.
func MatchEmoji(text string, pos int) (int, bool) {
	end, ok := matchEmojiElement(text, pos)
	if !ok {
		return pos, false
	}
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if r != zwj {
			break
		}
		next, ok := matchEmojiElement(text, end+size)
		if !ok {
			break
		}
		end = next
	}
	return end, true
}

// matchEmojiElement tries, in order: a modifier base with an optional skin
// tone, an emoji-presentation character, an emoji forced wide by VS16.
func matchEmojiElement(text string, pos int) (int, bool) {
	if pos >= len(text) {
		return pos, false
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	end := pos + size

	if emojiModifierBase.Contains(r) {
		if end < len(text) {
			m, msize := utf8.DecodeRuneInString(text[end:])
			if emojiModifier.Contains(m) {
				end += msize
			}
		}
		return end, true
	}
	if emojiPresentation.Contains(r) {
		return end, true
	}
	if emoji.Contains(r) && end < len(text) {
		v, vsize := utf8.DecodeRuneInString(text[end:])
		if v == vs16 {
			return end + vsize, true
		}
	}
	return pos, false
}

// MatchMarks matches one or more combining marks (general category M) at pos.
func MatchMarks(text string, pos int) (int, bool) {
	end := pos
	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if r == utf8.RuneError || !unicode.Is(unicode.M, r) {
			break
		}
		end += size
	}
	return end, end > pos
}
