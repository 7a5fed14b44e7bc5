// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitjungle/weightipy/internal/core"
	"github.com/bitjungle/weightipy/internal/utils"
	"github.com/bitjungle/weightipy/pkg/table"
	"github.com/bitjungle/weightipy/pkg/types"
)

// EfficiencyOptions holds the options for the efficiency command.
type EfficiencyOptions struct {
	WeightColumn string
}

// NewEfficiencyCommand creates the efficiency subcommand.
func NewEfficiencyCommand() *cobra.Command {
	opts := &EfficiencyOptions{}

	cmd := &cobra.Command{
		Use:   "efficiency [flags] <weighted.csv>",
		Short: "Report Kish weighting efficiency for an existing weight column",
		Long: `Efficiency reports the Kish-style weighting efficiency, design effect, and
effective sample size of a weight column already present in a file
(typically the output of the weight command).

EXAMPLES:
  weightipy efficiency --weight-column weights weighted.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEfficiency(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.WeightColumn, "weight-column", "weights", "Name of the weight column")

	return cmd
}

func runEfficiency(opts *EfficiencyOptions, inputFile string) error {
	if err := utils.ValidateFilePath(inputFile); err != nil {
		return fmt.Errorf("input path rejected: %w", err)
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	dataset, err := table.LoadCSV(f, table.DefaultFormat())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	col, ok := dataset.Column(opts.WeightColumn)
	if !ok || col.Kind != types.ColumnNumeric {
		return fmt.Errorf("column %q not found or not numeric", opts.WeightColumn)
	}

	diag, err := core.ComputeDiagnostics(col.Floats)
	if err != nil {
		return err
	}

	fmt.Printf("Weighting efficiency report for %q (%d rows)\n", opts.WeightColumn, dataset.Len())
	fmt.Printf("  Mean weight:          %.4f\n", diag.Mean)
	fmt.Printf("  Variance:             %.4f\n", diag.Variance)
	fmt.Printf("  Efficiency:           %.2f%%\n", diag.Efficiency)
	fmt.Printf("  Design effect:        %.4f\n", diag.DesignEffect)
	fmt.Printf("  Effective sample size: %.1f\n", diag.EffectiveN)

	return nil
}
