package width

// Interval is a closed range of code points.
type Interval struct {
	Low  rune
	High rune
}

// Table is a sorted list of non-overlapping intervals.
type Table []Interval

// Contains reports whether r falls inside any interval of the table.
func (t Table) Contains(r rune) bool {
	if len(t) == 0 || r < t[0].Low || r > t[len(t)-1].High {
		return false
	}

	lo, hi := 0, len(t)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		switch {
		case r > t[mid].High:
			lo = mid + 1
		case r < t[mid].Low:
			hi = mid - 1
		default:
			return true
		}
	}
	return false
}
