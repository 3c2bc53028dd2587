package width

// RuneWidth returns the number of columns r occupies: 0 for control and
// non-spacing characters, 2 for East Asian wide characters, 1 otherwise.
func RuneWidth(r rune) int {
	if r == 0 || r < 32 || (r >= 0x7f && r < 0xa0) || zeroWidth.Contains(r) {
		return 0
	}
	if isWide(r) {
		return 2
	}
	return 1
}

func isWide(r rune) bool {
	return r >= 0x1100 &&
		(r <= 0x115f || // Hangul Jamo init. consonants
			r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) || // CJK ... Yi
			(r >= 0xac00 && r <= 0xd7a3) || // Hangul Syllables
			(r >= 0xf900 && r <= 0xfaff) || // CJK Compatibility Ideographs
			(r >= 0xfe10 && r <= 0xfe19) || // Vertical forms
			(r >= 0xfe30 && r <= 0xfe6f) || // CJK Compatibility Forms
			(r >= 0xff00 && r <= 0xff60) || // Fullwidth Forms
			(r >= 0xffe0 && r <= 0xffe6) ||
			(r >= 0x20000 && r <= 0x2fffd) ||
			(r >= 0x30000 && r <= 0x3fffd))
}
