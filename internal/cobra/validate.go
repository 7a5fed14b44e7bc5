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
	"github.com/bitjungle/weightipy/pkg/table"
	"github.com/bitjungle/weightipy/pkg/types"
)

// ValidateOptions holds the options for the validate command.
type ValidateOptions struct {
	Scheme string
	Strict bool
	solverFlags
}

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [flags] <input.csv>",
		Short: "Validate a dataset against a weighting scheme",
		Long: `Validate checks a dataset against a scheme before weighting: missing
columns, targets that sum to zero, NaN values within a weighting dimension,
target categories absent from the data, and observed categories absent
from the scheme.

EXAMPLES:
  # Report all issues, succeeding even with warnings
  weightipy validate --scheme scheme.json data.csv

  # Fail the command on any warning, not just errors
  weightipy validate --scheme scheme.json --strict data.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Scheme, "scheme", "", "Scheme JSON file (required)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on warnings, not just errors")
	cmd.MarkFlagRequired("scheme")

	return cmd
}

func runValidate(opts *ValidateOptions, inputFile string) error {
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

	scheme, err := loadScheme(opts.Scheme, opts.toConfig())
	if err != nil {
		return err
	}

	engine := core.NewEngine(filter.DefaultEvaluator{})
	report, err := engine.ValidateScheme(dataset, scheme, false)
	if err != nil {
		return err
	}

	if len(report.Issues) == 0 {
		fmt.Println("✓ No issues found; scheme is ready to weight this data")
		return nil
	}

	fmt.Printf("Found %d issue(s):\n", len(report.Issues))
	for _, issue := range report.Issues {
		marker := "⚠"
		if issue.Severity == types.SeverityError {
			marker = "✗"
		}
		where := issue.Group
		if issue.Variable != "" {
			where = fmt.Sprintf("%s/%s", issue.Group, issue.Variable)
		}
		fmt.Printf("  %s [%s] %s: %s\n", marker, issue.Severity, where, issue.Details)
	}

	if report.HasErrors() {
		return fmt.Errorf("validation failed with %d error(s)", len(report.Errors()))
	}
	if opts.Strict && len(report.Warnings()) > 0 {
		return fmt.Errorf("validation failed with %d warning(s) in strict mode", len(report.Warnings()))
	}

	return nil
}
