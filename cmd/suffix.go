package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/menna3lwan/BioAnalyzerPro/config"
	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// suffixCmd represents the suffix command
var suffixCmd = &cobra.Command{
	Use:   "suffix",
	Short: "Build a suffix array over a short sequence",
	Long: `Build a suffix array over a DNA sequence and log how its order was
derived: the rank of every position over doubling window widths, then the
final sorted suffix order. Meant for short sequences, the length bound is
configurable with --suffix-max-len.`,
	Run: runSuffix,
}

func runSuffix(cmd *cobra.Command, args []string) {
	p := &inputParser{}
	seq, err := p.sequence(cmd)
	if err != nil {
		stderr.Fatal(err)
	}

	arr, err := bioanalyzer.BuildSuffixArray(seq, config.New().SuffixMaxLen)
	if err != nil {
		stderr.Fatal(err)
	}

	banner("SUFFIX ARRAY CONSTRUCTION")
	fmt.Printf("Input Sequence: %s\nLength: %d\n\n", trunc(seq, 60), len(seq))

	writeRankTable(os.Stdout, arr.Text())
	fmt.Println()
	writeSuffixOrder(os.Stdout, arr)

	pat, _ := cmd.Flags().GetString("pattern")
	if strings.TrimSpace(pat) == "" {
		return
	}
	pat = p.clean(pat)

	positions := arr.Search(pat)
	if len(positions) == 0 {
		fmt.Printf("\nPattern %s not found\n", pat)
		return
	}
	fmt.Printf("\nPattern %s found at position(s): %s\n", pat, joinInts(positions))
}

// writeRankTable renders the iterative doubling derivation: one row per
// text position, one rank column per doubling round.
func writeRankTable(w io.Writer, text string) {
	table := bioanalyzer.RankTable(text)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Pos\tSuffix"
	for i := range table {
		header += fmt.Sprintf("\t2^%d", i)
	}
	fmt.Fprintln(tw, header)

	for j := 0; j < len(text); j++ {
		row := fmt.Sprintf("%d\t%s", j, trunc(text[j:], 10))
		for i := range table {
			row += fmt.Sprintf("\t%d", table[i][j])
		}
		fmt.Fprintln(tw, row)
	}
	tw.Flush()
}

// writeSuffixOrder renders the sorted suffix order.
func writeSuffixOrder(w io.Writer, arr *bioanalyzer.SuffixArray) {
	fmt.Fprintln(w, "Final Suffix Array Order:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Rank\tPosition\tSuffix")
	for _, row := range arr.Rows() {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", row.Rank, row.Pos, trunc(row.Suffix, 15))
	}
	tw.Flush()
}

// joinInts renders positions space separated.
func joinInts(values []int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(fields, " ")
}

// set flags
func init() {
	rootCmd.AddCommand(suffixCmd)

	suffixCmd.Flags().StringP("seq", "s", "", "DNA sequence to build the suffix array over")
	suffixCmd.Flags().StringP("in", "i", "", "input FASTA file, its first record is used <FASTA>")
	suffixCmd.Flags().StringP("pattern", "p", "", "pattern to search the suffix array for (optional)")
	suffixCmd.Flags().Int("suffix-max-len", config.DefaultSuffixMaxLen, "longest sequence to build a suffix array for")

	viper.BindPFlag("suffix-max-len", suffixCmd.Flags().Lookup("suffix-max-len"))
}
