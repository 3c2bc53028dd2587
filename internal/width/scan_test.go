package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
		run  Run
	}{
		{"ascii", "abc", 1, Run{Kind: SingleUnit, Start: 1, End: 2, Width: 1}},
		{"sgr", "\x1b[31mhi", 0, Run{Kind: AnsiEscape, Start: 0, End: 5}},
		{"c1 csi", "\u009b31mhi", 0, Run{Kind: AnsiEscape, Start: 0, End: 5}},
		{"cursor hide", "\x1b[?25l", 0, Run{Kind: AnsiEscape, Start: 0, End: 6}},
		{"long parameter", "\x1b[12345m", 0, Run{Kind: AnsiEscape, Start: 0, End: 7}},
		{"lone escape", "\x1b", 0, Run{Kind: SingleUnit, Start: 0, End: 1}},
		{"unterminated csi", "\x1b[", 0, Run{Kind: SingleUnit, Start: 0, End: 1}},
		{"emoji", "x👶", 1, Run{Kind: EmojiCluster, Start: 1, End: 5, Width: 2}},
		{"skin tone", "👶🏽!", 0, Run{Kind: EmojiCluster, Start: 0, End: 8, Width: 2}},
		{"zwj family", "👩\u200d👩\u200d👦", 0, Run{Kind: EmojiCluster, Start: 0, End: 18, Width: 2}},
		{"vs16", "\u2194\ufe0f", 0, Run{Kind: EmojiCluster, Start: 0, End: 6, Width: 2}},
		{"marks", "e\u0301\u0302f", 1, Run{Kind: CombiningMarks, Start: 1, End: 5}},
		{"wide", "中", 0, Run{Kind: SingleUnit, Start: 0, End: 3, Width: 2}},
		{"zero width space", "\u200b", 0, Run{Kind: SingleUnit, Start: 0, End: 3}},
		{"invalid utf-8", "\xff", 0, Run{Kind: SingleUnit, Start: 0, End: 1, Width: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.run, Scanner{}.Scan(tt.text, tt.pos))
		})
	}
}

func TestScanUTF16(t *testing.T) {
	s := Scanner{UTF16: true}
	assert.Equal(t, Run{Kind: SingleUnit, Start: 0, End: 4, Width: 2}, s.Scan("\U0001F200", 0))
	assert.Equal(t, Run{Kind: SingleUnit, Start: 0, End: 3, Width: 2}, s.Scan("中", 0))
}

func TestMatchANSI(t *testing.T) {
	tests := []struct {
		text string
		end  int
		ok   bool
	}{
		{"\x1b[0m", 4, true},
		{"\x1b[1;31m", 7, true},
		{"\x1b[38;5;208mx", 11, true},
		{"\x1b[K", 3, true},
		{"\x1b[1A", 4, true},
		{"\x1b(B", 3, true},
		{"\x1b[", 0, false},
		{"\x1bb", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		end, ok := MatchANSI(tt.text, 0)
		assert.Equal(t, tt.ok, ok, "MatchANSI(%q)", tt.text)
		assert.Equal(t, tt.end, end, "MatchANSI(%q)", tt.text)
	}
}

func TestMatchEmoji(t *testing.T) {
	tests := []struct {
		text string
		end  int
		ok   bool
	}{
		{"👍", 4, true},
		{"👍🏿x", 8, true},
		{"👩\u200d", 4, true},
		{"👩\u200dx", 4, true},
		{"👩\u200d👩", 11, true},
		{"\u261d\ufe0f", 3, true},
		{"\u00a9\ufe0f", 5, true},
		{"\u00a9", 0, false},
		{"\u2605", 0, false},
		{"a", 0, false},
	}

	for _, tt := range tests {
		end, ok := MatchEmoji(tt.text, 0)
		assert.Equal(t, tt.ok, ok, "MatchEmoji(%q)", tt.text)
		assert.Equal(t, tt.end, end, "MatchEmoji(%q)", tt.text)
	}
}

func TestMatchMarks(t *testing.T) {
	end, ok := MatchMarks("a\u0300\u0301b", 1)
	assert.True(t, ok)
	assert.Equal(t, 5, end)

	end, ok = MatchMarks("ab", 1)
	assert.False(t, ok)
	assert.Equal(t, 1, end)

	end, ok = MatchMarks("\ufe0f", 0)
	assert.True(t, ok)
	assert.Equal(t, 3, end)
}

func TestMalformedEscapesFallThrough(t *testing.T) {
	assert.Equal(t, 1, StringWidth("\x1b["))
	assert.Equal(t, 3, StringWidth("\x1b[;x"))
	assert.Equal(t, 1, StringWidth("\x1b[12345m"))
}
