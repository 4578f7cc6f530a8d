package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
)

func Test_writeOverlap(t *testing.T) {
	var buf bytes.Buffer
	writeOverlap(&buf, "TTACG", "ACGGT", 3)

	want := "Sequence A: TTACG\n" +
		"              vvv\n" +
		"Sequence B:   ACGGT\n" +
		"Overlap region: ACG\n" +
		"Overlap length: 3 bp\n\n"
	if got := buf.String(); got != want {
		t.Errorf("writeOverlap() = %q, want %q", got, want)
	}
}

func Test_writeOverlapTable(t *testing.T) {
	reads := []string{"ATGCGATCG", "TCGATCGAT", "ATCGATCGC"}
	overlaps := []bioanalyzer.Overlap{
		{A: 0, B: 1, Length: 3},
		{A: 0, B: 2, Length: 4},
	}

	var buf bytes.Buffer
	writeOverlapTable(&buf, reads, overlaps)

	// longest overlap first
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("writeOverlapTable() rendered %d lines, want 3", len(lines))
	}
	if fields := strings.Fields(lines[1]); fields[len(fields)-1] != "4" {
		t.Errorf("writeOverlapTable() first row = %q, want the length 4 overlap", lines[1])
	}
	if fields := strings.Fields(lines[2]); fields[len(fields)-1] != "3" {
		t.Errorf("writeOverlapTable() second row = %q, want the length 3 overlap", lines[2])
	}
}

func Test_runAssemble(t *testing.T) {
	in := writeTestFasta(t, ">r1\nATGCGATCG\n>r2\nTCGATCGAT\n>r3\nATCGATCGC\n>r4\nCGCTAGCTA\n")
	out := filepath.Join(t.TempDir(), "assembly.json")

	assembleCmd.Flags().Set("in", in)
	assembleCmd.Flags().Set("out", out)
	assembleCmd.Flags().Set("greedy", "true")

	runAssemble(assembleCmd, []string{})

	blob, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	parsed := &bioanalyzer.AssemblyOutput{}
	if err = json.Unmarshal(blob, parsed); err != nil {
		t.Fatal(err)
	}

	if len(parsed.Reads) != 4 {
		t.Errorf("runAssemble() wrote %d reads, want 4", len(parsed.Reads))
	}
	if len(parsed.Overlaps) == 0 {
		t.Error("runAssemble() wrote no overlaps")
	}
	if parsed.Assembly == nil {
		t.Fatal("runAssemble() wrote no assembly")
	}
	if want := "ATGCGATCGATCGCTAGCTATCGATCGAT"; parsed.Assembly.Contig != want {
		t.Errorf("runAssemble() wrote contig %s, want %s", parsed.Assembly.Contig, want)
	}
}
