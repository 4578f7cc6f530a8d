package bioanalyzer

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// IndexEntry is one k-mer and the position it starts at.
type IndexEntry struct {
	Kmer string `json:"kmer"`
	Pos  int    `json:"pos"`
}

// KmerIndex holds every k-length substring of a sequence sorted by k-mer,
// ties broken by ascending position. Build it once, query it many times;
// the index is read-only after construction and must only be queried with
// the exact sequence it was built from.
type KmerIndex struct {
	k       int
	entries []IndexEntry
}

// BuildIndex collects the k-mer starting at every position of seq into a
// sorted index. A k larger than the sequence yields a valid empty index;
// a k below 1 is an error.
func BuildIndex(seq string, k int) (*KmerIndex, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "k-mer size %d is below 1", k)
	}

	index := &KmerIndex{k: k}
	for i := 0; i+k <= len(seq); i++ {
		index.entries = append(index.entries, IndexEntry{Kmer: seq[i : i+k], Pos: i})
	}

	// stable, so equal k-mers keep their ascending position order
	slices.SortStableFunc(index.entries, func(a, b IndexEntry) int {
		return strings.Compare(a.Kmer, b.Kmer)
	})

	return index, nil
}

// K returns the k-mer length the index was built with.
func (x *KmerIndex) K() int {
	return x.k
}

// Entries returns the index's sorted (k-mer, position) pairs. The slice is
// the index's own backing array; callers must not write through it.
func (x *KmerIndex) Entries() []IndexEntry {
	return x.entries
}

// Query finds every position where pattern occurs in seq. The pattern's
// first k characters locate the run of candidate entries by binary search
// and the full pattern is then verified against seq at each candidate, so
// patterns longer than k are fine. Patterns shorter than k can't use the
// index and are rejected. seq must be the sequence the index was built
// from.
func (x *KmerIndex) Query(seq, pattern string) ([]int, error) {
	if len(pattern) < x.k {
		return nil, errors.Wrapf(ErrInvalidInput,
			"pattern length %d is below the index k-mer size %d", len(pattern), x.k)
	}

	key := pattern[:x.k]
	run, _ := slices.BinarySearchFunc(x.entries, key, func(e IndexEntry, key string) int {
		return strings.Compare(e.Kmer, key)
	})

	var positions []int
	for _, e := range x.entries[run:] {
		if e.Kmer != key {
			break
		}
		if e.Pos+len(pattern) <= len(seq) && seq[e.Pos:e.Pos+len(pattern)] == pattern {
			positions = append(positions, e.Pos)
		}
	}

	slices.Sort(positions)
	return positions, nil
}

// IndexStats summarizes a built index.
type IndexStats struct {
	SequenceLength int `json:"sequenceLength"`
	K              int `json:"k"`
	UniqueKmers    int `json:"uniqueKmers"`
	TotalKmers     int `json:"totalKmers"`
}

// Stats reports how many k-mers the index holds and how many are distinct.
func (x *KmerIndex) Stats(seq string) IndexStats {
	stats := IndexStats{
		SequenceLength: len(seq),
		K:              x.k,
		TotalKmers:     len(x.entries),
	}
	for i, e := range x.entries {
		if i == 0 || x.entries[i-1].Kmer != e.Kmer {
			stats.UniqueKmers++
		}
	}

	return stats
}
