package bioanalyzer

import "strings"

// complements maps every byte to its complementary base: A<->T and C<->G,
// case folded to uppercase. Bytes without a partner (N among them) pass
// through, uppercased when they're letters.
var complements = buildComplements()

func buildComplements() (table [256]byte) {
	for i := 0; i < 256; i++ {
		table[i] = byte(i)
	}
	for c := byte('a'); c <= 'z'; c++ {
		table[c] = c - 'a' + 'A'
	}
	for base, comp := range map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'} {
		table[base] = comp
		table[base+'a'-'A'] = comp
	}

	return
}

// codonTable is the standard genetic code. Stop codons translate to '*'.
var codonTable = map[string]byte{
	"TTT": 'F', "CTT": 'L', "ATT": 'I', "GTT": 'V',
	"TTC": 'F', "CTC": 'L', "ATC": 'I', "GTC": 'V',
	"TTA": 'L', "CTA": 'L', "ATA": 'I', "GTA": 'V',
	"TTG": 'L', "CTG": 'L', "ATG": 'M', "GTG": 'V',
	"TCT": 'S', "CCT": 'P', "ACT": 'T', "GCT": 'A',
	"TCC": 'S', "CCC": 'P', "ACC": 'T', "GCC": 'A',
	"TCA": 'S', "CCA": 'P', "ACA": 'T', "GCA": 'A',
	"TCG": 'S', "CCG": 'P', "ACG": 'T', "GCG": 'A',
	"TAT": 'Y', "CAT": 'H', "AAT": 'N', "GAT": 'D',
	"TAC": 'Y', "CAC": 'H', "AAC": 'N', "GAC": 'D',
	"TAA": '*', "CAA": 'Q', "AAA": 'K', "GAA": 'E',
	"TAG": '*', "CAG": 'Q', "AAG": 'K', "GAG": 'E',
	"TGT": 'C', "CGT": 'R', "AGT": 'S', "GGT": 'G',
	"TGC": 'C', "CGC": 'R', "AGC": 'S', "GGC": 'G',
	"TGA": '*', "CGA": 'R', "AGA": 'R', "GGA": 'G',
	"TGG": 'W', "CGG": 'R', "AGG": 'R', "GGG": 'G',
}

// GCContent returns the percentage of G and C bases in seq, in [0, 100].
// An empty sequence has a GC content of 0, not NaN.
func GCContent(seq string) float64 {
	if seq == "" {
		return 0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			gc++
		}
	}

	return float64(gc) / float64(len(seq)) * 100
}

// ATContent is GCContent's complement, so the two always sum to 100.
func ATContent(seq string) float64 {
	return 100 - GCContent(seq)
}

// Complement maps each base of seq to its partner, A<->T and C<->G.
// Characters without a partner, like N, pass through. Output is uppercase.
func Complement(seq string) string {
	b := []byte(seq)
	for i := range b {
		b[i] = complements[b[i]]
	}

	return string(b)
}

// Reverse returns seq backwards. Byte order only, no base semantics.
func Reverse(seq string) string {
	b := []byte(seq)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// ReverseComplement complements the reversed sequence: the same stretch of
// DNA read off the opposite strand.
func ReverseComplement(seq string) string {
	return Complement(Reverse(seq))
}

// Translate reads seq in consecutive non-overlapping triplets from position
// 0 and maps each through the standard codon table. A triplet containing a
// character outside ACGT becomes 'X'. A trailing partial triplet is dropped,
// not padded.
func Translate(seq string) string {
	seq = strings.ToUpper(seq)

	var protein strings.Builder
	for i := 0; i+3 <= len(seq); i += 3 {
		aa, ok := codonTable[seq[i:i+3]]
		if !ok {
			aa = 'X'
		}
		protein.WriteByte(aa)
	}

	return protein.String()
}

// GCProfile slides a window across seq and collects the GC content of each
// window, one value per window start. The window is clamped into [1,
// len(seq)]; an empty sequence has an empty profile.
func GCProfile(seq string, window int) []float64 {
	if seq == "" {
		return nil
	}
	if window < 1 {
		window = 1
	}
	if window > len(seq) {
		window = len(seq)
	}

	profile := make([]float64, 0, len(seq)-window+1)
	for i := 0; i+window <= len(seq); i++ {
		profile = append(profile, GCContent(seq[i:i+window]))
	}

	return profile
}
