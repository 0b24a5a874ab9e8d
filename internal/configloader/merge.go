package configloader

import (
	"slices"

	"github.com/yaklabco/ruleslint/pkg/config"
)

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Thresholds.MinLines != 0 {
		result.Thresholds.MinLines = override.Thresholds.MinLines
	}
	if override.Thresholds.MinHeadings != 0 {
		result.Thresholds.MinHeadings = override.Thresholds.MinHeadings
	}

	// false is the zero value, so a later layer can enable recursion but not disable it.
	if override.Recursive {
		result.Recursive = true
	}

	if override.SkipVendored {
		result.SkipVendored = true
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
