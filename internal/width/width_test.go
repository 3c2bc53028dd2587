package width

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s        string
		expected int
	}{
		{"", 0},
		{"hello", 5},
		{"Hello", 5},
		{"\x1b[31mhello", 5},
		{"abcde", 5},
		{"古池や", 6},
		{"あいうabc", 9},
		{"あいう★", 7},
		{"±", 1},
		{"ノード.js", 9},
		{"你好", 4},
		{"안녕하세요", 10},
		{"\x1b[31m\x1b[39m", 0},
		{"\u231a", 2},
		{"\u2194\ufe0f", 2},
		{"\U0001F469", 2},
		{"\U0001F469\U0001F3FF", 2},
		{"葛\U000E0100", 2},
		{"ปฏัก", 3},
		{"_\u0e34", 1},
		{"ﾊﾞ", 2},
		{"ﾊﾟ", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StringWidth(tt.s), "StringWidth(%q)", tt.s)
	}
}

func TestStringWidthControlCharacters(t *testing.T) {
	for _, r := range []rune{0, 31, 127, 134, 159, 0x1b, 0x200b} {
		assert.Equal(t, 0, StringWidth(string(r)), "StringWidth(%U)", r)
	}
}

func TestStringWidthCombiningCharacters(t *testing.T) {
	assert.Equal(t, 1, StringWidth("x\u0300"))
	assert.Equal(t, StringWidth("e"), StringWidth("e\u0301\u0302\u0303"))
	assert.Equal(t, 2, StringWidth("中\u0300"))
}

func TestStringWidthEmoji(t *testing.T) {
	clusters := []string{
		"👶",
		"👶🏽",
		"👩‍👩‍👦‍👦",
		"👨‍❤️‍💋‍👨",
		"☝️",
	}

	for _, c := range clusters {
		assert.Equal(t, 2, StringWidth(c), "StringWidth(%q)", c)
		assert.Equal(t, 4, StringWidth(strings.Repeat(c, 2)), "StringWidth(%q x2)", c)
		assert.Equal(t, 10, StringWidth(strings.Repeat(c, 5)), "StringWidth(%q x5)", c)
	}
}

func TestStringWidthNarrowSymbols(t *testing.T) {
	narrow := []string{
		"\u2026", "\u2770", "\u2771", "\u21a9", "\u2193", "\u21f5", "\u2937", "\u27a4",
		"\u2190", "\u21d0", "\u2194", "\u21d4", "\u21ce", "\u27f7", "\u2192",
		"\u21d2", "\u21e8", "\u2191", "\u21c5", "\u2197", "\u21cb", "\u21cc",
		"\u21c6", "\u21c4", "\u2217", "\u2714", "\u2014", "\u2022", "\u2013",
		"\u2709", "\u2261", "\u2691", "\u2690", "\u22ef", "\u226a", "\u226b",
		"\u270e", "\u00a0", "\u2009", "\u200a", "\u274f", "\u2750", "\u26a0",
	}

	for _, s := range narrow {
		assert.Equal(t, 1, StringWidth(s), "StringWidth(%q)", s)
	}
}

func TestStringWidthIgnoresANSI(t *testing.T) {
	inputs := []string{"hello", "古池や", "👩‍👩‍👦‍👦 family", "x\u0300y"}
	wrappers := []func(string) string{
		func(s string) string { return "\x1b[31m" + s + "\x1b[39m" },
		func(s string) string { return "\x1b[1;4;38;5;208m" + s + "\x1b[0m" },
		func(s string) string { return "\u009b32m" + s + "\u009b0m" },
	}

	for _, a := range All() {
		for _, s := range inputs {
			for _, wrap := range wrappers {
				assert.Equal(t, a.StringWidth(s), a.StringWidth(wrap(s)), "%s: %q", a.Name(), s)
			}
		}
	}
}

func TestSupplementaryFallback(t *testing.T) {
	// U+1F200 matches no emoji pattern and is not in a wide range.
	s := "A\U0001F200BC"
	assert.Equal(t, 4, Wcwidth.StringWidth(s))
	assert.Equal(t, 5, WcwidthUTF16.StringWidth(s))

	// Tags are zero width as a scalar but two storage units wide.
	assert.Equal(t, 0, Wcwidth.StringWidth("\U000E0041"))
	assert.Equal(t, 2, WcwidthUTF16.StringWidth("\U000E0041"))

	// Patterns consume whole code points in both modes.
	assert.Equal(t, 2, WcwidthUTF16.StringWidth("👶🏽"))
	assert.Equal(t, 2, WcwidthUTF16.StringWidth("葛\U000E0100"))
}

func TestAlgorithmsAgreeOnBasics(t *testing.T) {
	for _, a := range All() {
		assert.Equal(t, 0, a.StringWidth(""), a.Name())
		assert.Equal(t, 5, a.StringWidth("hello"), a.Name())
		assert.Equal(t, 4, a.StringWidth("你好"), a.Name())
		assert.Equal(t, 10, a.StringWidth("안녕하세요"), a.Name())
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		a, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, a.Name())
	}

	_, err := Lookup("nope")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "wcwidth")

	assert.Equal(t, "wcwidth", Names()[0])
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		s        string
		expected string
	}{
		{"plain", "plain"},
		{"\x1b[31mred\x1b[0m", "red"},
		{"\u009b1mbold", "bold"},
		{"a\x1bb", "a\x1bb"},
		{"古\x1b[2m池", "古池"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripANSI(tt.s), "StripANSI(%q)", tt.s)
	}
}

func BenchmarkStringWidth(b *testing.B) {
	inputs := map[string]string{
		"ascii": strings.Repeat("lorem ipsum dolor sit amet ", 20),
		"ansi":  strings.Repeat("\x1b[31mlorem\x1b[39m ipsum ", 20),
		"cjk":   strings.Repeat("古池や蛙飛び込む水の音", 20),
		"emoji": strings.Repeat("👩‍👩‍👦‍👦👶🏽", 20),
	}

	for name, s := range inputs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				StringWidth(s)
			}
		})
	}
}
