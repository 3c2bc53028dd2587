package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTablesSorted(t *testing.T) {
	tables := map[string]Table{
		"zeroWidth":         zeroWidth,
		"emoji":             emoji,
		"emojiPresentation": emojiPresentation,
		"emojiModifierBase": emojiModifierBase,
		"emojiModifier":     emojiModifier,
	}

	for name, table := range tables {
		for i, iv := range table {
			assert.LessOrEqual(t, iv.Low, iv.High, "%s[%d]", name, i)
			if i > 0 {
				assert.Greater(t, iv.Low, table[i-1].High, "%s[%d] overlaps previous interval", name, i)
			}
		}
	}
}

func TestTableContains(t *testing.T) {
	table := Table{{0x10, 0x20}, {0x30, 0x30}, {0x40, 0x4f}}

	tests := []struct {
		r        rune
		expected bool
	}{
		{0x0f, false},
		{0x10, true},
		{0x18, true},
		{0x20, true},
		{0x21, false},
		{0x30, true},
		{0x3f, false},
		{0x4f, true},
		{0x50, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, table.Contains(tt.r), "Contains(%#x)", tt.r)
	}

	assert.False(t, Table(nil).Contains('a'))
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r        rune
		expected int
	}{
		{'A', 1},
		{' ', 1},
		{0, 0},
		{0x1f, 0},
		{0x7f, 0},
		{0x9f, 0},
		{0xa0, 1},
		{0x0300, 0},
		{0x200b, 0},
		{0x1100, 2},
		{0x115f, 2},
		{0x1160, 0},
		{0x2329, 2},
		{0x303e, 2},
		{0x303f, 1},
		{'中', 2},
		{'한', 2},
		{0xf900, 2},
		{0xfe10, 2},
		{0xfe30, 2},
		{'Ａ', 2},
		{0xff61, 1},
		{0xffe0, 2},
		{0x20000, 2},
		{0x2fffe, 1},
		{0x30000, 2},
		{0xe0100, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, RuneWidth(tt.r), "RuneWidth(%U)", tt.r)
	}
}
