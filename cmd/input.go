package cmd

import (
	"strings"

	"github.com/menna3lwan/BioAnalyzerPro/internal/bioanalyzer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// sequence gathers the sequence to work on: the "seq" flag when one was
// passed, otherwise the first record of the "in" FASTA file.
func (p *inputParser) sequence(cmd *cobra.Command) (string, error) {
	if seq, _ := cmd.Flags().GetString("seq"); strings.TrimSpace(seq) != "" {
		return p.clean(seq), nil
	}

	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		return "", errors.Wrap(bioanalyzer.ErrInvalidInput, "no sequence passed: use --seq or --in")
	}

	records, err := bioanalyzer.ReadRecords(in)
	if err != nil {
		return "", err
	}

	return records[0].Seq, nil
}

// pattern gathers the cleaned "pattern" flag.
func (p *inputParser) pattern(cmd *cobra.Command) (string, error) {
	pat, _ := cmd.Flags().GetString("pattern")
	if strings.TrimSpace(pat) == "" {
		return "", errors.Wrap(bioanalyzer.ErrInvalidInput, "no pattern passed: use --pattern")
	}

	return p.clean(pat), nil
}

// records gathers every record of the "in" FASTA file.
func (p *inputParser) records(cmd *cobra.Command) ([]bioanalyzer.Record, error) {
	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		return nil, errors.Wrap(bioanalyzer.ErrInvalidInput, "no input file passed: use --in")
	}

	return bioanalyzer.ReadRecords(in)
}

// reads gathers every record's sequence from the "in" FASTA file.
func (p *inputParser) reads(cmd *cobra.Command) ([]string, error) {
	records, err := p.records(cmd)
	if err != nil {
		return nil, err
	}

	reads := make([]string, len(records))
	for i, r := range records {
		reads[i] = r.Seq
	}

	return reads, nil
}

// clean uppercases a sequence and trims the whitespace around it.
func (p *inputParser) clean(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}
