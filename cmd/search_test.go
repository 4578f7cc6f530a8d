package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
)

func Test_formatMatches(t *testing.T) {
	type args struct {
		seq       string
		pattern   string
		positions []int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"single match",
			args{"AAAATTTT", "TT", []int{4}},
			"Found 1 match(es):\n\nMatch 1 at position 4:\n  ...AAAA[TT]TT...\n\n",
		},
		{
			"context clipped to the sequence",
			args{"ATGCGATCGATCGATCGATCGATCGATCG", "GATC", []int{4}},
			"Found 1 match(es):\n\nMatch 1 at position 4:\n  ...ATGC[GATC]GATCGATCGATCGATCGATC...\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMatches(tt.args.seq, tt.args.pattern, tt.args.positions); got != tt.want {
				t.Errorf("formatMatches() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_formatMatches_truncation(t *testing.T) {
	seq := strings.Repeat("A", 15)
	positions := make([]int, 15)
	for i := range positions {
		positions[i] = i
	}

	got := formatMatches(seq, "A", positions)

	if count := strings.Count(got, "Match "); count != 10 {
		t.Errorf("formatMatches() rendered %d matches, want 10", count)
	}
	if !strings.Contains(got, "... and 5 more matches") {
		t.Error("formatMatches() missing the truncation line")
	}
}

func Test_writeBadCharTable(t *testing.T) {
	var buf bytes.Buffer
	writeBadCharTable(&buf, bioanalyzer.NewBadCharTable("TCGC"))

	want := map[string]string{"A": "4", "C": "0", "G": "1", "T": "3", "N": "4"}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want)+1 {
		t.Fatalf("writeBadCharTable() rendered %d lines, want %d", len(lines), len(want)+1)
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) != 2 || want[fields[0]] != fields[1] {
			t.Errorf("writeBadCharTable() row %q, want shift %s", line, want[fields[0]])
		}
	}
}
