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
	"github.com/bitjungle/weightipy/pkg/filter"
	"github.com/bitjungle/weightipy/pkg/profiling"
	"github.com/bitjungle/weightipy/pkg/table"
)

// WeightOptions holds the options for the weight command.
type WeightOptions struct {
	Input        string
	Scheme       string
	Output       string
	Format       string
	WeightColumn string
	solverFlags
}

// NewWeightCommand creates the weight subcommand.
func NewWeightCommand() *cobra.Command {
	opts := &WeightOptions{}

	cmd := &cobra.Command{
		Use:   "weight [flags] <input.csv>",
		Short: "Compute raking weights for a dataset against a scheme",
		Long: `Weight raises survey microdata against one or more population targets
using iterative proportional fitting (raking).

EXAMPLES:
  # Weight a dataset, writing weighted rows alongside the input columns
  weightipy weight --scheme scheme.json --output weighted.csv data.csv

  # Export as XLSX with a custom weight column name
  weightipy weight --scheme scheme.json --output weighted.xlsx --format xlsx --weight-column w data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input = args[0]
			return runWeight(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Scheme, "scheme", "", "Scheme JSON file (required)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output file (required)")
	cmd.Flags().StringVar(&opts.Format, "format", "csv", "Output format: csv or xlsx")
	cmd.Flags().StringVar(&opts.WeightColumn, "weight-column", "weights", "Name of the output weight column")
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", 0, "Maximum raking iterations (0 = scheme default)")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "Convergence threshold (0 = scheme default)")
	cmd.Flags().Float64Var(&opts.WeightCap, "weight-cap", 0, "Clip individual weights to this value (0 = uncapped)")
	cmd.Flags().IntVar(&opts.MinCategoryCount, "min-category-count", 0, "Minimum observed count per category (0 = no floor)")
	cmd.Flags().StringVar(&opts.MinCategoryPolicy, "min-category-policy", "warn", "Policy below min-category-count: warn or drop")
	cmd.MarkFlagRequired("scheme")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runWeight(opts *WeightOptions) error {
	// Set WEIGHTIPY_PROFILE=1 to record peak memory use across the solve;
	// a no-op otherwise.
	profiler := profiling.NewMemoryProfiler()
	profiler.Start("weight")
	defer profiler.Stop()

	if err := utils.ValidateFilePath(opts.Input); err != nil {
		return fmt.Errorf("input path rejected: %w", err)
	}
	if err := utils.ValidateOutputPath(opts.Output); err != nil {
		return fmt.Errorf("output path rejected: %w", err)
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	dataset, err := table.LoadCSV(f, table.DefaultFormat())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	profiler.Checkpoint("loaded")

	scheme, err := loadScheme(opts.Scheme, opts.toConfig())
	if err != nil {
		return err
	}

	engine := core.NewEngine(filter.DefaultEvaluator{})
	weighted, result, err := engine.WeightDataFrame(dataset, scheme, opts.WeightColumn)
	if err != nil {
		return fmt.Errorf("weighting failed: %w", err)
	}
	profiler.Checkpoint("solved")

	switch opts.Format {
	case "csv":
		out, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer out.Close()
		if err := table.WriteCSV(out, weighted); err != nil {
			return err
		}
	case "xlsx":
		if err := table.WriteXLSX(opts.Output, weighted); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", opts.Format)
	}

	eff, effErr := core.Efficiency(result.Weights)

	fmt.Printf("Weighted %d rows across %d group(s)\n", weighted.Len(), len(scheme.Groups))
	fmt.Printf("  Converged: %v\n", result.Converged)
	if effErr == nil {
		fmt.Printf("  Weighting efficiency: %.2f%%\n", eff)
	}
	fmt.Printf("  Output: %s\n", opts.Output)

	for _, gr := range result.Groups {
		for _, w := range gr.Convergence.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
	}

	return nil
}
