package bioanalyzer

import (
	"strings"

	"github.com/pkg/errors"
)

// FindOverlap returns the length of the longest suffix of a that is also a
// prefix of b, as long as that length reaches minLength, and 0 when no such
// overlap exists. The scan anchors on occurrences of b's minLength-prefix
// inside a, leftmost first, and verifies that the rest of a from the anchor
// is a prefix of b; the leftmost verified anchor is the longest overlap.
func FindOverlap(a, b string, minLength int) (int, error) {
	if minLength < 1 {
		return 0, errors.Wrapf(ErrInvalidInput, "minimum overlap %d is below 1", minLength)
	}
	if len(b) < minLength {
		return 0, nil
	}

	prefix := b[:minLength]
	for start := 0; ; start++ {
		offset := strings.Index(a[start:], prefix)
		if offset < 0 {
			return 0, nil
		}
		start += offset

		if strings.HasPrefix(b, a[start:]) {
			return len(a) - start, nil
		}
	}
}

// Overlap records that the Length-long suffix of read A equals the
// Length-long prefix of read B. Reads are identified by index into the
// caller's slice, not by content, so duplicate reads stay distinguishable.
type Overlap struct {
	A      int `json:"a"`
	B      int `json:"b"`
	Length int `json:"length"`
}

// FindAllOverlaps runs FindOverlap over every ordered pair of distinct
// reads and keeps the strictly positive results, ordered by A then B.
func FindAllOverlaps(reads []string, minLength int) ([]Overlap, error) {
	if len(reads) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no reads to overlap")
	}

	var overlaps []Overlap
	for a := range reads {
		for b := range reads {
			if a == b {
				continue
			}

			length, err := FindOverlap(reads[a], reads[b], minLength)
			if err != nil {
				return nil, err
			}
			if length > 0 {
				overlaps = append(overlaps, Overlap{A: a, B: b, Length: length})
			}
		}
	}

	return overlaps, nil
}

// OverlapStats rolls the lengths of a set of overlap records into a Summary.
func OverlapStats(overlaps []Overlap) Summary {
	lengths := make([]int, len(overlaps))
	for i, o := range overlaps {
		lengths[i] = o.Length
	}

	return Summarize(lengths)
}

// AssemblyStep records one merge during assembly: the read that joined the
// contig, the overlap it joined with, and the contig afterward. The seed
// read is step 0 with a zero overlap.
type AssemblyStep struct {
	Read    int    `json:"read"`
	Overlap int    `json:"overlap"`
	Contig  string `json:"contig"`
}

// Assembly is a greedy assembly result: the final contig and the step log
// that rebuilds it.
type Assembly struct {
	Contig string         `json:"contig"`
	Steps  []AssemblyStep `json:"steps"`
}

// GreedyAssemble merges reads into a single contig. The first read seeds
// the contig; each round the pooled read with the longest overlap against
// the current contig is merged, the earliest pool entry winning ties. Once
// no pooled read overlaps at minLength, the leftovers are concatenated in
// their original order.
func GreedyAssemble(reads []string, minLength int) (*Assembly, error) {
	if len(reads) == 0 {
		return nil, errors.Wrap(ErrInvalidInput, "no reads to assemble")
	}
	if minLength < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "minimum overlap %d is below 1", minLength)
	}

	// unused read indexes, kept in original order for the tie-break
	pool := make([]int, 0, len(reads)-1)
	for i := 1; i < len(reads); i++ {
		pool = append(pool, i)
	}

	result := &Assembly{
		Contig: reads[0],
		Steps:  []AssemblyStep{{Read: 0, Overlap: 0, Contig: reads[0]}},
	}

	for len(pool) > 0 {
		best, bestAt, bestOverlap := -1, -1, 0
		for at, read := range pool {
			length, err := FindOverlap(result.Contig, reads[read], minLength)
			if err != nil {
				return nil, err
			}
			// strictly greater, so earlier pool entries win ties
			if length > bestOverlap {
				best, bestAt, bestOverlap = read, at, length
			}
		}

		if best < 0 {
			for _, read := range pool {
				result.Contig += reads[read]
				result.Steps = append(result.Steps, AssemblyStep{Read: read, Overlap: 0, Contig: result.Contig})
			}
			break
		}

		result.Contig += reads[best][bestOverlap:]
		result.Steps = append(result.Steps, AssemblyStep{Read: best, Overlap: bestOverlap, Contig: result.Contig})
		pool = append(pool[:bestAt], pool[bestAt+1:]...)
	}

	return result, nil
}
