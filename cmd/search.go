package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search a sequence for a pattern",
	Long: `Find every occurrence of a pattern in a DNA sequence with either the
naive scan or Boyer-Moore (bad character rule). Matches are logged with
their surrounding context and, for Boyer-Moore, the bad character shift
table is rendered too.`,
	Run: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) {
	p := &inputParser{}
	seq, err := p.sequence(cmd)
	if err != nil {
		stderr.Fatal(err)
	}
	pat, err := p.pattern(cmd)
	if err != nil {
		stderr.Fatal(err)
	}

	var positions []int
	var table *bioanalyzer.BadCharTable

	algorithm, _ := cmd.Flags().GetString("algorithm")
	switch algorithm {
	case "naive":
		banner("NAIVE PATTERN SEARCH")
		positions = bioanalyzer.NaiveMatch(seq, pat)
	case "boyer-moore":
		banner("BOYER-MOORE PATTERN SEARCH")
		positions, table = bioanalyzer.BoyerMooreMatch(seq, pat)
	default:
		stderr.Fatalf("unrecognized algorithm %q: use naive or boyer-moore", algorithm)
	}

	fmt.Printf("Sequence Length: %d bp\n", len(seq))
	fmt.Printf("Pattern: %s\nPattern Length: %d bp\n\n", pat, len(pat))

	if table != nil {
		fmt.Println("Bad Character Table:")
		writeBadCharTable(os.Stdout, table)
		fmt.Println()
	}

	if len(positions) == 0 {
		fmt.Println("Pattern not found")
		return
	}

	fmt.Print(formatMatches(seq, pat, positions))

	summary := bioanalyzer.Summarize(positions)
	fmt.Printf("Position Summary: first %d, last %d, mean %.1f\n", summary.Min, summary.Max, summary.Mean)
}

// formatMatches renders the first ten matches with twenty characters of
// context on each side, the match itself bracketed.
func formatMatches(seq, pattern string, positions []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d match(es):\n\n", len(positions))

	shown := positions
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, pos := range shown {
		start := pos - 20
		if start < 0 {
			start = 0
		}
		end := pos + len(pattern) + 20
		if end > len(seq) {
			end = len(seq)
		}

		fmt.Fprintf(&b, "Match %d at position %d:\n", i+1, pos)
		fmt.Fprintf(&b, "  ...%s[%s]%s...\n\n",
			seq[start:pos], seq[pos:pos+len(pattern)], seq[pos+len(pattern):end])
	}

	if len(positions) > 10 {
		fmt.Fprintf(&b, "... and %d more matches\n\n", len(positions)-10)
	}

	return b.String()
}

// writeBadCharTable renders the shift each alphabet byte causes on a
// mismatch against the pattern's last character.
func writeBadCharTable(w io.Writer, table *bioanalyzer.BadCharTable) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Base\tShift")
	for _, c := range table.Alphabet() {
		fmt.Fprintf(tw, "%c\t%d\n", c, table.Shift(c))
	}
	tw.Flush()
}

// set flags
func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("seq", "s", "", "DNA sequence to search in")
	searchCmd.Flags().StringP("in", "i", "", "input FASTA file, its first record is searched <FASTA>")
	searchCmd.Flags().StringP("pattern", "p", "", "pattern to search for")
	searchCmd.Flags().StringP("algorithm", "a", "naive", "search algorithm, one of naive|boyer-moore")
	searchCmd.MarkFlagRequired("pattern")
}
