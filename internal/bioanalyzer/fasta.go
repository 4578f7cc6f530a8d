package bioanalyzer

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Record is one parsed FASTA entry: the header text after '>' and the
// cleaned sequence from the line below it.
type Record struct {
	Header string `json:"header"`
	Seq    string `json:"seq"`
}

// unwantedChars matches everything that is not a recognized base.
var unwantedChars = regexp.MustCompile(`(?i)[^acgtn]`)

// ParseFasta parses FASTA-like text: a '>' header line owns the single line
// immediately following it as its sequence. Sequence lines are uppercased
// and stripped of every character outside ACGTN; a record whose sequence is
// empty after cleaning is dropped. Text with no surviving records is
// malformed. Header text after '>' is kept verbatim; pulling labels out of
// it is the caller's business.
func ParseFasta(blob string) ([]Record, error) {
	var records []Record

	header := ""
	pending := false
	for _, line := range strings.Split(blob, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, ">"):
			header = strings.TrimSpace(line[1:])
			pending = true
		case pending:
			// the line after a header is its sequence, even when cleaning
			// leaves nothing of it
			if seq := strings.ToUpper(unwantedChars.ReplaceAllString(line, "")); seq != "" {
				records = append(records, Record{Header: header, Seq: seq})
			}
			pending = false
		}
	}

	if len(records) == 0 {
		return nil, errors.Wrap(ErrMalformedRecord, "failed to parse record(s)")
	}

	return records, nil
}

// RecordStats summarizes a parsed record set.
type RecordStats struct {
	Count      int     `json:"count"`
	TotalBases int     `json:"totalBases"`
	MinLength  int     `json:"minLength"`
	MaxLength  int     `json:"maxLength"`
	MeanLength float64 `json:"meanLength"`
}

// FastaStats reports the record count and the spread of sequence lengths.
func FastaStats(records []Record) RecordStats {
	lengths := make([]int, len(records))
	total := 0
	for i, r := range records {
		lengths[i] = len(r.Seq)
		total += len(r.Seq)
	}

	s := Summarize(lengths)
	return RecordStats{
		Count:      len(records),
		TotalBases: total,
		MinLength:  s.Min,
		MaxLength:  s.Max,
		MeanLength: s.Mean,
	}
}
