package bioanalyzer

import "golang.org/x/exp/slices"

// Gap is the padding symbol in aligned sequences.
const Gap = '-'

// Op classifies one aligned column.
type Op int

const (
	// OpMatch is a column whose two characters are equal
	OpMatch Op = iota

	// OpSubstitute is a column with two different characters
	OpSubstitute

	// OpDelete is a character of x aligned against a gap in y
	OpDelete

	// OpInsert is a gap in x aligned against a character of y
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}

	return "unknown"
}

// DPMatrix is the (len(x)+1) x (len(y)+1) Levenshtein table for a pair of
// sequences: cell (i, j) holds the edit distance between the first i
// characters of x and the first j of y.
type DPMatrix struct {
	x, y  string
	cells [][]int
}

// NewDPMatrix fills the table for x and y. The first row and column count
// pure inserts and deletes; every inner cell takes the cheapest of the
// diagonal, vertical and horizontal moves with unit costs.
func NewDPMatrix(x, y string) *DPMatrix {
	m := &DPMatrix{x: x, y: y, cells: make([][]int, len(x)+1)}
	for i := range m.cells {
		m.cells[i] = make([]int, len(y)+1)
		m.cells[i][0] = i
	}
	for j := 0; j <= len(y); j++ {
		m.cells[0][j] = j
	}

	for i := 1; i <= len(x); i++ {
		for j := 1; j <= len(y); j++ {
			delta := 0
			if x[i-1] != y[j-1] {
				delta = 1
			}

			cell := m.cells[i-1][j-1] + delta
			if del := m.cells[i-1][j] + 1; del < cell {
				cell = del
			}
			if ins := m.cells[i][j-1] + 1; ins < cell {
				cell = ins
			}
			m.cells[i][j] = cell
		}
	}

	return m
}

// At returns the distance between x's first i characters and y's first j.
func (m *DPMatrix) At(i, j int) int {
	return m.cells[i][j]
}

// Distance is the full edit distance, the bottom-right cell.
func (m *DPMatrix) Distance() int {
	return m.cells[len(m.x)][len(m.y)]
}

// Rows returns the matrix cells row by row for rendering. The slices are
// the matrix's own backing storage; callers must not write through them.
func (m *DPMatrix) Rows() [][]int {
	return m.cells
}

// EditDistance is the minimum number of single-character inserts, deletes
// and substitutions turning x into y.
func EditDistance(x, y string) int {
	return NewDPMatrix(x, y).Distance()
}

// EditDistanceMatrix returns the distance along with the filled table, for
// callers that go on to trace an alignment or render the matrix.
func EditDistanceMatrix(x, y string) (int, *DPMatrix) {
	m := NewDPMatrix(x, y)
	return m.Distance(), m
}

// Alignment is an optimal pairing of two sequences: both strings padded to
// equal length with Gap plus one Op per column. Stripping the gaps from X
// and Y returns the original inputs, and the count of non-match columns
// equals the edit distance.
type Alignment struct {
	X   string `json:"x"`
	Y   string `json:"y"`
	Ops []Op   `json:"ops"`
}

// Traceback recovers one optimal alignment by walking the filled matrix
// from the bottom-right corner back to the origin. When several moves are
// optimal the walk prefers diagonal, then vertical (delete), then
// horizontal (insert); that fixed order picks a single deterministic
// alignment out of the optimal set. The distance itself is unique either
// way.
func (m *DPMatrix) Traceback() Alignment {
	var x, y []byte
	var ops []Op

	i, j := len(m.x), len(m.y)
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			delta := 0
			if m.x[i-1] != m.y[j-1] {
				delta = 1
			}

			if m.cells[i][j] == m.cells[i-1][j-1]+delta {
				op := OpMatch
				if delta == 1 {
					op = OpSubstitute
				}
				ops = append(ops, op)
				x = append(x, m.x[i-1])
				y = append(y, m.y[j-1])
				i--
				j--
			} else if m.cells[i][j] == m.cells[i-1][j]+1 {
				ops = append(ops, OpDelete)
				x = append(x, m.x[i-1])
				y = append(y, Gap)
				i--
			} else {
				ops = append(ops, OpInsert)
				x = append(x, Gap)
				y = append(y, m.y[j-1])
				j--
			}
		} else if i > 0 {
			ops = append(ops, OpDelete)
			x = append(x, m.x[i-1])
			y = append(y, Gap)
			i--
		} else {
			ops = append(ops, OpInsert)
			x = append(x, Gap)
			y = append(y, m.y[j-1])
			j--
		}
	}

	// the walk collects columns right to left
	slices.Reverse(ops)

	return Alignment{X: Reverse(string(x)), Y: Reverse(string(y)), Ops: ops}
}

// Rail draws the classifier line between the two padded strings: '|' for a
// match, 'x' substitution, '^' deletion, 'v' insertion.
func (a Alignment) Rail() string {
	rail := make([]byte, len(a.Ops))
	for i, op := range a.Ops {
		switch op {
		case OpMatch:
			rail[i] = '|'
		case OpSubstitute:
			rail[i] = 'x'
		case OpDelete:
			rail[i] = '^'
		case OpInsert:
			rail[i] = 'v'
		}
	}

	return string(rail)
}

// Counts totals the alignment's columns per operation.
func (a Alignment) Counts() map[Op]int {
	counts := make(map[Op]int)
	for _, op := range a.Ops {
		counts[op]++
	}

	return counts
}
