package cmd

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/menna3lwan/BioAnalyzerPro/config"
	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// seqCmd represents the seq command
var seqCmd = &cobra.Command{
	Use:   "seq",
	Short: "Analyze a DNA sequence",
	Long: `Run the full set of sequence utilities against a DNA sequence: length,
GC/AT content, complement, reverse complement, translation to protein and
a sliding window GC content plot.`,
	Run: runSeq,
}

func runSeq(cmd *cobra.Command, args []string) {
	seq, err := (&inputParser{}).sequence(cmd)
	if err != nil {
		stderr.Fatal(err)
	}

	report := bioanalyzer.Analyze(seq)

	banner("DNA SEQUENCE ANALYSIS")
	fmt.Printf("Input Sequence: %s\n", trunc(seq, 60))
	fmt.Printf("Length: %d bp\n\n", report.Length)
	fmt.Printf("GC Content: %.2f%%\n", report.GCContent)
	fmt.Printf("AT Content: %.2f%%\n", report.ATContent)
	fmt.Printf("\nComplement: %s\n", trunc(report.Complement, 60))
	fmt.Printf("Reverse Complement: %s\n", trunc(report.ReverseComplement, 60))
	fmt.Printf("\nTranslation: %s\n", trunc(report.Protein, 60))

	window := config.New().GCWindow
	if profile := bioanalyzer.GCProfile(seq, window); len(profile) > 1 {
		fmt.Printf("\nGC Content (%d bp window):\n", window)
		fmt.Println(asciigraph.Plot(profile, asciigraph.Height(10), asciigraph.Precision(0)))
	}
}

// set flags
func init() {
	rootCmd.AddCommand(seqCmd)

	seqCmd.Flags().StringP("seq", "s", "", "DNA sequence to analyze")
	seqCmd.Flags().StringP("in", "i", "", "input FASTA file, its first record is analyzed <FASTA>")
	seqCmd.Flags().IntP("gc-window", "w", config.DefaultGCWindow, "window width of the GC content plot")

	viper.BindPFlag("gc-window", seqCmd.Flags().Lookup("gc-window"))
}
