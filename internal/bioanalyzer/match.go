package bioanalyzer

// NaiveMatch compares pattern against every window of seq and returns the
// positions where it occurs, ascending. An empty pattern matches nowhere
// rather than at every offset; that policy keeps the result meaningful and
// is shared by BoyerMooreMatch.
func NaiveMatch(seq, pattern string) []int {
	if pattern == "" || len(pattern) > len(seq) {
		return nil
	}

	var positions []int
	for i := 0; i+len(pattern) <= len(seq); i++ {
		if seq[i:i+len(pattern)] == pattern {
			positions = append(positions, i)
		}
	}

	return positions
}

// BadCharTable is the bad-character rule behind BoyerMooreMatch. Shift
// reports, for a text byte, the distance from its rightmost occurrence in
// the pattern to the pattern's end; bytes absent from the pattern shift a
// full pattern length.
type BadCharTable struct {
	// Pattern the table was built for
	Pattern string

	// rightmost occurrence of each byte in Pattern, -1 when absent
	last [256]int
}

// NewBadCharTable records the rightmost occurrence of every byte in pattern.
func NewBadCharTable(pattern string) *BadCharTable {
	t := &BadCharTable{Pattern: pattern}
	for i := range t.last {
		t.last[i] = -1
	}
	for i := 0; i < len(pattern); i++ {
		t.last[pattern[i]] = i
	}

	return t
}

// Shift returns the table's shift for text byte c.
func (t *BadCharTable) Shift(c byte) int {
	if t.last[c] < 0 {
		return len(t.Pattern)
	}

	return len(t.Pattern) - 1 - t.last[c]
}

// Alphabet lists the bytes worth rendering for this table: the standard
// bases first, then any other byte the pattern contains.
func (t *BadCharTable) Alphabet() []byte {
	alphabet := []byte("ACGTN")

	seen := make(map[byte]bool)
	for _, c := range alphabet {
		seen[c] = true
	}
	for i := 0; i < len(t.Pattern); i++ {
		if c := t.Pattern[i]; !seen[c] {
			seen[c] = true
			alphabet = append(alphabet, c)
		}
	}

	return alphabet
}

// BoyerMooreMatch finds every occurrence of pattern in seq with the
// bad-character rule alone. The good-suffix rule is deliberately left out:
// the scan stays correct but loses the usual worst-case bound, which is an
// acceptable trade for the short inputs this tool targets. Positions come
// back ascending, together with the shift table used for the scan.
func BoyerMooreMatch(seq, pattern string) ([]int, *BadCharTable) {
	table := NewBadCharTable(pattern)
	if pattern == "" || len(pattern) > len(seq) {
		return nil, table
	}

	var positions []int
	for i := 0; i+len(pattern) <= len(seq); {
		j := len(pattern) - 1
		for j >= 0 && seq[i+j] == pattern[j] {
			j--
		}

		if j < 0 {
			positions = append(positions, i)
			i++ // overlapping occurrences count too
			continue
		}

		// Align the mismatched text byte with its rightmost pattern
		// occurrence left of j, clamped so the window always moves forward.
		shift := j - table.last[seq[i+j]]
		if shift < 1 {
			shift = 1
		}
		i += shift
	}

	return positions, table
}
