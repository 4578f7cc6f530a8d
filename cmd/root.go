// Package cmd is for command line interactions with the bioanalyzer application
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/menna3lwan/BioAnalyzerPro/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "bioanalyzer",
	Short: `Analyze DNA sequences from the command line.
Parse FASTA files, search for patterns, build indexes, assemble reads and align sequences`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.OnInitialize(config.Setup)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// banner logs a title between two full-width separator lines.
func banner(title string) {
	line := strings.Repeat("=", 60)
	fmt.Printf("%s\n%s\n%s\n\n", line, title, line)
}

// trunc cuts seq off at width characters for display.
func trunc(seq string, width int) string {
	if len(seq) > width {
		return seq[:width] + "..."
	}

	return seq
}
