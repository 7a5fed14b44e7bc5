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
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "weightipy",
		Short: "weightipy - survey raking and weighting efficiency CLI",
		Long: `weightipy applies iterative proportional fitting (raking) to survey
microdata so that one or more categorical variables match known population
targets, optionally within independently-weighted segments (regions,
waves, panels).

Features:
  • Flat and segmented (RIM) weighting schemes
  • Schemes loaded from a JSON dict file (flat or segmented)
  • Pre-solve validation against the input data
  • Kish weighting-efficiency and design-effect diagnostics
  • CSV and XLSX output`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		NewWeightCommand(),
		NewValidateCommand(),
		NewEfficiencyCommand(),
		NewVersionCommand(),
		NewCompletionCommand(rootCmd),
	)

	return rootCmd
}

// Execute runs the CLI application.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
