package bioanalyzer

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Sentinel terminates the text inside a SuffixArray. It sorts before every
// base, which keeps the suffix order total even when one suffix is a prefix
// of another.
const Sentinel = '$'

// DefaultSuffixMaxLen bounds BuildSuffixArray inputs. Construction sorts
// suffixes by direct string comparison, fine for the short texts this tool
// targets and hopeless at genome scale.
const DefaultSuffixMaxLen = 10000

// SuffixArray holds the positions of text+sentinel in lexicographic suffix
// order; position 0 of the array is always the sentinel suffix.
type SuffixArray struct {
	text string // uppercased text plus trailing sentinel
	sa   []int
}

// BuildSuffixArray appends the sentinel to text and sorts every suffix
// position by direct comparison. maxLen bounds the accepted text length;
// pass 0 for DefaultSuffixMaxLen. The text itself must not contain the
// sentinel.
func BuildSuffixArray(text string, maxLen int) (*SuffixArray, error) {
	if maxLen < 1 {
		maxLen = DefaultSuffixMaxLen
	}
	if len(text) > maxLen {
		return nil, errors.Wrapf(ErrUnsupported,
			"text length %d is over the %d base suffix-array bound", len(text), maxLen)
	}
	if strings.ContainsRune(text, Sentinel) {
		return nil, errors.Wrapf(ErrInvalidInput, "text already contains the sentinel %q", Sentinel)
	}

	s := &SuffixArray{text: strings.ToUpper(text) + string(Sentinel)}
	s.sa = make([]int, len(s.text))
	for i := range s.sa {
		s.sa[i] = i
	}
	slices.SortFunc(s.sa, func(a, b int) int {
		return strings.Compare(s.text[a:], s.text[b:])
	})

	return s, nil
}

// Text returns the sentinel-terminated text the array was built over.
func (s *SuffixArray) Text() string {
	return s.text
}

// Positions returns the suffix positions in sorted-suffix order. The slice
// is the array's own backing storage; callers must not write through it.
func (s *SuffixArray) Positions() []int {
	return s.sa
}

// Search returns every text position whose suffix starts with pattern, in
// ascending order. An empty pattern matches nowhere and the sentinel can't
// be searched for.
func (s *SuffixArray) Search(pattern string) []int {
	if pattern == "" || strings.ContainsRune(pattern, Sentinel) {
		return nil
	}
	pattern = strings.ToUpper(pattern)

	// the run of suffixes starting with pattern is contiguous in sa
	lo := sort.Search(len(s.sa), func(i int) bool {
		return s.text[s.sa[i]:] >= pattern
	})
	hi := sort.Search(len(s.sa), func(i int) bool {
		suffix := s.text[s.sa[i]:]
		return suffix >= pattern && !strings.HasPrefix(suffix, pattern)
	})

	positions := append([]int(nil), s.sa[lo:hi]...)
	slices.Sort(positions)

	return positions
}

// SuffixRow pairs a rank with its position and suffix for rendering.
type SuffixRow struct {
	Rank   int    `json:"rank"`
	Pos    int    `json:"pos"`
	Suffix string `json:"suffix"`
}

// Rows lists the array in rank order, one row per suffix.
func (s *SuffixArray) Rows() []SuffixRow {
	rows := make([]SuffixRow, len(s.sa))
	for rank, pos := range s.sa {
		rows[rank] = SuffixRow{Rank: rank, Pos: pos, Suffix: s.text[pos:]}
	}

	return rows
}

// RankTable reproduces the iterative-doubling derivation of the suffix
// order. Round 0 ranks single characters with the sentinel lowest; round n
// ranks each position by its window of 2^n previous-round ranks, windows
// clipped at the text's end; rounds stop once every rank is distinct. Rows
// are indexed by text position, and ordering positions by the final row's
// ranks reproduces BuildSuffixArray's order.
func RankTable(text string) [][]int {
	t := strings.ToUpper(text)
	if !strings.HasSuffix(t, string(Sentinel)) {
		t += string(Sentinel)
	}

	// round 0: dense character ranks
	chars := []byte(t)
	slices.Sort(chars)
	chars = slices.Compact(chars)

	row := make([]int, len(t))
	for j := 0; j < len(t); j++ {
		rank, _ := slices.BinarySearch(chars, t[j])
		row[j] = rank
	}
	table := [][]int{row}

	for width := 2; !allDistinct(table[len(table)-1]); width *= 2 {
		prev := table[len(table)-1]

		windows := make([][]int, len(prev))
		for j := range prev {
			end := j + width
			if end > len(prev) {
				end = len(prev)
			}
			windows[j] = prev[j:end]
		}

		// dense-rank the windows by their sorted distinct order
		distinct := make([][]int, len(windows))
		copy(distinct, windows)
		slices.SortFunc(distinct, func(a, b []int) int { return slices.Compare(a, b) })
		distinct = slices.CompactFunc(distinct, func(a, b []int) bool { return slices.Compare(a, b) == 0 })

		row := make([]int, len(prev))
		for j, w := range windows {
			rank, _ := slices.BinarySearchFunc(distinct, w, func(a, b []int) int { return slices.Compare(a, b) })
			row[j] = rank
		}
		table = append(table, row)
	}

	return table
}

func allDistinct(row []int) bool {
	seen := make(map[int]bool, len(row))
	for _, rank := range row {
		if seen[rank] {
			return false
		}
		seen[rank] = true
	}

	return true
}
