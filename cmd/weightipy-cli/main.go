// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package main

import (
	"github.com/bitjungle/weightipy/internal/cobra"
	"github.com/bitjungle/weightipy/internal/version"
)

// Build-time variables, set via -ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.GitCommit = buildCommit
	version.BuildDate = buildDate

	cobra.Version = buildVersion
	cobra.Commit = buildCommit
	cobra.BuildTime = buildDate

	cobra.Execute()
}
