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
	"golang.org/x/exp/slices"
)

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Find overlaps between reads and assemble them into a contig",
	Long: `Find every suffix-prefix overlap between the reads of a FASTA file and,
with --greedy, merge them into a single contig: the longest overlapping
read joins the contig each round until none reaches the minimum overlap,
leftovers are concatenated.

Results can be written to a JSON file with --out.`,
	Run: runAssemble,
}

func runAssemble(cmd *cobra.Command, args []string) {
	reads, err := (&inputParser{}).reads(cmd)
	if err != nil {
		stderr.Fatal(err)
	}

	minOverlap := config.New().MinOverlap
	overlaps, err := bioanalyzer.FindAllOverlaps(reads, minOverlap)
	if err != nil {
		stderr.Fatal(err)
	}

	stats := bioanalyzer.OverlapStats(overlaps)

	banner("OVERLAP ANALYSIS")
	fmt.Printf("Number of Sequences: %d\n", len(reads))
	fmt.Printf("Minimum Overlap: %d bp\n", minOverlap)
	fmt.Printf("Overlaps Found: %d\n", stats.Count)
	fmt.Printf("Max Overlap Length: %d bp\n", stats.Max)
	fmt.Printf("Avg Overlap Length: %.1f bp\n\n", stats.Mean)

	if len(overlaps) > 0 {
		fmt.Println("Overlap Table:")
		writeOverlapTable(os.Stdout, reads, overlaps)

		fmt.Println("\nOverlap Visualization:")
		shown := overlaps
		if len(shown) > 5 {
			shown = shown[:5]
		}
		for _, o := range shown {
			writeOverlap(os.Stdout, reads[o.A], reads[o.B], o.Length)
		}
		if len(overlaps) > 5 {
			fmt.Printf("... and %d more overlaps\n", len(overlaps)-5)
		}
	} else {
		fmt.Println("No overlaps found with minimum length requirement")
	}

	var result *bioanalyzer.Assembly
	if greedy, _ := cmd.Flags().GetBool("greedy"); greedy {
		if result, err = bioanalyzer.GreedyAssemble(reads, minOverlap); err != nil {
			stderr.Fatal(err)
		}

		fmt.Println()
		banner("GREEDY ASSEMBLY RESULTS")
		fmt.Printf("Input Sequences: %d\n", len(reads))
		fmt.Printf("Minimum Overlap: %d bp\n\n", minOverlap)
		fmt.Printf("Final Contig:\nLength: %d bp\nSequence: %s\n\n", len(result.Contig), trunc(result.Contig, 60))

		fmt.Println("Assembly Steps:")
		for i, step := range result.Steps {
			switch {
			case i == 0:
				fmt.Printf("  Starting with read %d: %s\n", step.Read, trunc(reads[step.Read], 60))
			case step.Overlap > 0:
				fmt.Printf("  Added read %d with overlap %d\n", step.Read, step.Overlap)
			default:
				fmt.Printf("  Concatenated read %d\n", step.Read)
			}
		}

		total := 0
		for _, read := range reads {
			total += len(read)
		}
		compression := 0.0
		if total > 0 {
			compression = float64(total-len(result.Contig)) / float64(total) * 100
		}
		fmt.Printf("\nCompression: %.1f%%\n", compression)
		fmt.Printf("  (Input: %d bp -> Output: %d bp)\n", total, len(result.Contig))
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if _, err := bioanalyzer.WriteAssembly(out, reads, minOverlap, overlaps, result); err != nil {
			stderr.Fatal(err)
		}
		fmt.Printf("\nWrote results to %s\n", out)
	}
}

// writeOverlapTable renders every overlap, longest first.
func writeOverlapTable(w io.Writer, reads []string, overlaps []bioanalyzer.Overlap) {
	sorted := append([]bioanalyzer.Overlap(nil), overlaps...)
	slices.SortStableFunc(sorted, func(a, b bioanalyzer.Overlap) int {
		return b.Length - a.Length
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Sequence A\tSequence B\tOverlap Length")
	for _, o := range sorted {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", trunc(reads[o.A], 15), trunc(reads[o.B], 15), o.Length)
	}
	tw.Flush()
}

// writeOverlap draws one suffix-prefix overlap, B shifted under A with the
// overlapping region marked.
func writeOverlap(w io.Writer, a, b string, length int) {
	at := len(a) - length

	fmt.Fprintf(w, "Sequence A: %s\n", a)
	fmt.Fprintf(w, "            %s%s\n", strings.Repeat(" ", at), strings.Repeat("v", length))
	fmt.Fprintf(w, "Sequence B: %s%s\n", strings.Repeat(" ", at), b)
	fmt.Fprintf(w, "Overlap region: %s\n", a[at:])
	fmt.Fprintf(w, "Overlap length: %d bp\n\n", length)
}

// set flags
func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringP("in", "i", "", "input FASTA file with reads to assemble <FASTA>")
	assembleCmd.Flags().StringP("out", "o", "", "output file name for the overlap and assembly results")
	assembleCmd.Flags().BoolP("greedy", "g", false, "run the greedy assembly after overlap detection")
	assembleCmd.Flags().IntP("min-overlap", "k", config.DefaultMinOverlap, "minimum overlap length between two reads")
	assembleCmd.MarkFlagRequired("in")

	viper.BindPFlag("min-overlap", assembleCmd.Flags().Lookup("min-overlap"))
}
