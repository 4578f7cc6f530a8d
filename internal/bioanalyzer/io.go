package bioanalyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vertgenlab/gonomics/fileio"
)

// AssemblyOutput is written to the filesystem after an assemble run: the
// reads, every overlap found between them, and the greedy assembly when one
// was requested.
type AssemblyOutput struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// MinOverlap is the minimum suffix-prefix overlap length used
	MinOverlap int `json:"minOverlap"`

	// Reads the overlaps were computed between
	Reads []string `json:"reads"`

	// Overlaps between ordered read pairs, keyed by read index
	Overlaps []Overlap `json:"overlaps"`

	// OverlapStats summarizes the overlap lengths
	OverlapStats Summary `json:"overlapStats"`

	// Assembly is the greedy contig and its step log, nil when only
	// overlap detection was requested
	Assembly *Assembly `json:"assembly,omitempty"`
}

// AlignmentOutput is written to the filesystem after an align run.
type AlignmentOutput struct {
	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// X and Y are the two input sequences
	X string `json:"x"`
	Y string `json:"y"`

	// Distance is the edit distance between X and Y
	Distance int `json:"distance"`

	// AlignedX, Rail and AlignedY are the gapped alignment block
	AlignedX string `json:"alignedX"`
	Rail     string `json:"rail"`
	AlignedY string `json:"alignedY"`

	// per-column operation totals
	Matches       int `json:"matches"`
	Substitutions int `json:"substitutions"`
	Deletions     int `json:"deletions"`
	Insertions    int `json:"insertions"`
}

// ReadRecords reads a FASTA file (by its path on the local fs) to a slice
// of records.
func ReadRecords(path string) ([]Record, error) {
	lines := fileio.Read(path)

	records, err := ParseFasta(strings.Join(lines, "\n"))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read records from %s", path)
	}

	return records, nil
}

// WriteAssembly writes the overlaps (and greedy assembly, if run) for a set
// of reads to the filename requested.
func WriteAssembly(filename string, reads []string, minOverlap int, overlaps []Overlap, result *Assembly) ([]byte, error) {
	return WriteJSON(filename, AssemblyOutput{
		Time:         timestamp(),
		MinOverlap:   minOverlap,
		Reads:        reads,
		Overlaps:     overlaps,
		OverlapStats: OverlapStats(overlaps),
		Assembly:     result,
	})
}

// WriteAlignment writes an alignment of x and y to the filename requested.
func WriteAlignment(filename, x, y string, distance int, a Alignment) ([]byte, error) {
	counts := a.Counts()

	return WriteJSON(filename, AlignmentOutput{
		Time:          timestamp(),
		X:             x,
		Y:             y,
		Distance:      distance,
		AlignedX:      a.X,
		Rail:          a.Rail(),
		AlignedY:      a.Y,
		Matches:       counts[OpMatch],
		Substitutions: counts[OpSubstitute],
		Deletions:     counts[OpDelete],
		Insertions:    counts[OpInsert],
	})
}

// WriteJSON serializes v and writes it to the filename requested, returning
// the serialized bytes.
func WriteJSON(filename string, v interface{}) (output []byte, err error) {
	if output, err = json.MarshalIndent(v, "", "  "); err != nil {
		return nil, errors.Wrap(err, "failed to serialize output")
	}

	if err = os.WriteFile(filename, output, 0666); err != nil {
		return nil, errors.Wrapf(err, "failed to write the output to %s", filename)
	}

	return output, nil
}

// timestamp, using same format as log.Println https://golang.org/pkg/log/#Println
func timestamp() string {
	t := time.Now() // https://gobyexample.com/time-formatting-parsing
	return fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)
}
