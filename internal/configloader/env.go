package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/ruleslint/pkg/config"
)

// envVarPrefix is the prefix for all ruleslint environment variables.
const envVarPrefix = "RULESLINT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"RECURSIVE":     {field: "recursive", typ: envTypeBool, description: "Search directories recursively: true or false"},
	"FORMAT":        {field: "format", typ: envTypeString, description: "Output format: text or json"},
	"COLOR":         {field: "color", typ: envTypeString, description: "Color mode: auto, always, or never"},
	"JOBS":          {field: "jobs", typ: envTypeInt, description: "Number of files validated concurrently"},
	"MIN_LINES":     {field: "thresholds.min_lines", typ: envTypeInt, description: "Line count below which a file is reported as short"},
	"MIN_HEADINGS":  {field: "thresholds.min_headings", typ: envTypeInt, description: "Heading count below which a file is reported as sparse"},
	"IGNORE":        {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore patterns"},
	"SKIP_VENDORED": {field: "skip_vendored", typ: envTypeBool, description: "Skip vendored directories during recursive discovery"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with RULESLINT_ (e.g., RULESLINT_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "recursive":
		cfg.Recursive = value
	case "skip_vendored":
		cfg.SkipVendored = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "thresholds.min_lines":
		cfg.Thresholds.MinLines = value
	case "thresholds.min_headings":
		cfg.Thresholds.MinHeadings = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns all supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
