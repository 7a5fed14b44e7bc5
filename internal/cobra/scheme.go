// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitjungle/weightipy/internal/core"
	"github.com/bitjungle/weightipy/internal/utils"
	"github.com/bitjungle/weightipy/pkg/types"
	"github.com/bitjungle/weightipy/pkg/validation"
)

// solverFlags holds the --max-iterations/--threshold/--weight-cap/
// --min-category-count/--min-category-policy values, mapping 1:1 onto
// types.SolverConfig (§6's configuration parameter names). The weight
// command registers them as flags; validate embeds the struct without
// flags, so its scheme uses the solver defaults.
type solverFlags struct {
	MaxIterations     int
	Threshold         float64
	WeightCap         float64
	MinCategoryCount  int
	MinCategoryPolicy string
}

func (f solverFlags) toConfig() types.SolverConfig {
	cfg := types.DefaultSolverConfig()
	if f.MaxIterations > 0 {
		cfg.MaxIterations = f.MaxIterations
	}
	if f.Threshold > 0 {
		cfg.ConvergenceThreshold = f.Threshold
	}
	cfg.WeightCap = f.WeightCap
	cfg.MinCategoryCount = f.MinCategoryCount
	if f.MinCategoryPolicy == string(types.MinCategoryDrop) {
		cfg.MinCategoryPolicy = types.MinCategoryDrop
	} else {
		cfg.MinCategoryPolicy = types.MinCategoryWarn
	}
	return cfg
}

// loadScheme reads a scheme JSON document (the §6 dict exchange format),
// validates its shape, and builds a Scheme via SchemeFromDict.
func loadScheme(path string, config types.SolverConfig) (*types.Scheme, error) {
	if err := utils.ValidateFilePath(path); err != nil {
		return nil, fmt.Errorf("scheme path rejected: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme file: %w", err)
	}

	validator, err := validation.NewSchemeValidator("")
	if err != nil {
		return nil, fmt.Errorf("failed to load scheme schema: %w", err)
	}
	if err := validator.ValidateJSON(data); err != nil {
		return nil, err
	}

	var dict map[string]interface{}
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("failed to decode scheme JSON: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return core.SchemeFromDict(dict, name, config)
}
