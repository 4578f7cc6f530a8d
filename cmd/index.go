package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/menna3lwan/BioAnalyzerPro/config"
	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build a k-mer index over a sequence and query it",
	Long: `Build a sorted k-mer index over a DNA sequence and log its stats and
k-mer table. With a pattern the index is queried: candidate positions come
from the pattern's first k characters and each one is verified against the
full pattern.`,
	Run: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) {
	p := &inputParser{}
	seq, err := p.sequence(cmd)
	if err != nil {
		stderr.Fatal(err)
	}

	index, err := bioanalyzer.BuildIndex(seq, config.New().K)
	if err != nil {
		stderr.Fatal(err)
	}

	stats := index.Stats(seq)

	banner("INDEX BUILT SUCCESSFULLY")
	fmt.Printf("Sequence Length: %d bp\n", stats.SequenceLength)
	fmt.Printf("K-mer Size: %d\n", stats.K)
	fmt.Printf("Unique K-mers: %d\n", stats.UniqueKmers)
	fmt.Printf("Total K-mers: %d\n\n", stats.TotalKmers)
	fmt.Println("K-mer Index Table:")
	writeIndexTable(os.Stdout, index)

	pat, _ := cmd.Flags().GetString("pattern")
	if strings.TrimSpace(pat) == "" {
		return
	}
	pat = p.clean(pat)

	positions, err := index.Query(seq, pat)
	if err != nil {
		stderr.Fatal(err)
	}

	fmt.Println()
	banner("INDEX SEARCH RESULTS")
	fmt.Printf("Pattern: %s\nPattern Length: %d bp\n\n", pat, len(pat))

	if len(positions) == 0 {
		fmt.Println("Pattern not found in index")
		return
	}

	fmt.Printf("Found %d match(es):\n\n", len(positions))
	shown := positions
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for i, pos := range shown {
		start := pos - 10
		if start < 0 {
			start = 0
		}
		end := pos + len(pat) + 10
		if end > len(seq) {
			end = len(seq)
		}

		fmt.Printf("Match %d at position %d:\n  %s\n", i+1, pos, seq[start:end])
		fmt.Printf("  %s%s\n\n", strings.Repeat(" ", pos-start), strings.Repeat("^", len(pat)))
	}
	if len(positions) > 10 {
		fmt.Printf("... and %d more matches\n", len(positions)-10)
	}
}

// writeIndexTable renders the index's k-mers with their positions, grouped
// per k-mer, at most twenty rows.
func writeIndexTable(w io.Writer, index *bioanalyzer.KmerIndex) {
	entries := index.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(w, "Index is empty")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "K-mer\tPositions")

	rows, kmers := 0, 0
	for i := 0; i < len(entries); {
		// entries are sorted, equal k-mers form a contiguous run
		j := i
		for j < len(entries) && entries[j].Kmer == entries[i].Kmer {
			j++
		}
		kmers++

		if rows < 20 {
			positions := make([]string, 0, j-i)
			for _, e := range entries[i:j] {
				positions = append(positions, strconv.Itoa(e.Pos))
			}
			if len(positions) > 10 {
				positions = append(positions[:10], "...")
			}

			fmt.Fprintf(tw, "%s\t%s\n", entries[i].Kmer, strings.Join(positions, " "))
			rows++
		}
		i = j
	}
	tw.Flush()

	if kmers > rows {
		fmt.Fprintf(w, "... and %d more k-mers\n", kmers-rows)
	}
}

// set flags
func init() {
	rootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringP("seq", "s", "", "DNA sequence to index")
	indexCmd.Flags().StringP("in", "i", "", "input FASTA file, its first record is indexed <FASTA>")
	indexCmd.Flags().StringP("pattern", "p", "", "pattern to query the index with (optional)")
	indexCmd.Flags().IntP("k", "k", config.DefaultK, "k-mer length to index with")

	viper.BindPFlag("k", indexCmd.Flags().Lookup("k"))
}
