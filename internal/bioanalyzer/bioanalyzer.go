// Package bioanalyzer is the analysis core behind the BioAnalyzer CLI:
// sequence transforms, exact pattern matching, k-mer and suffix-array
// search, pairwise overlap detection with greedy assembly, and edit-distance
// alignment, all over DNA strings restricted to {A,C,G,T,N}.
//
// Every operation here is a pure, synchronous computation over in-memory
// strings. File reading, flag parsing and rendering live in /cmd. The two
// "build once, query many" types, KmerIndex and SuffixArray, are read-only
// after construction and safe to share between goroutines.
package bioanalyzer

import "strings"

// Report collects every sequence utility's result for a single sequence.
type Report struct {
	// Length of the sequence after trimming
	Length int `json:"length"`

	// GCContent and ATContent as percentages that sum to 100
	GCContent float64 `json:"gcContent"`
	ATContent float64 `json:"atContent"`

	// Complement, Reverse and ReverseComplement of the sequence
	Complement        string `json:"complement"`
	Reverse           string `json:"reverse"`
	ReverseComplement string `json:"reverseComplement"`

	// Protein translated from the sequence's first reading frame
	Protein string `json:"protein"`
}

// Analyze runs the full set of sequence utilities against seq. The input is
// trimmed and uppercased once so every field reports on the same string.
func Analyze(seq string) Report {
	seq = strings.ToUpper(strings.TrimSpace(seq))

	return Report{
		Length:            len(seq),
		GCContent:         GCContent(seq),
		ATContent:         ATContent(seq),
		Complement:        Complement(seq),
		Reverse:           Reverse(seq),
		ReverseComplement: ReverseComplement(seq),
		Protein:           Translate(seq),
	}
}
