package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/ui/pretty"
	"github.com/yaklabco/ruleslint/pkg/config"
	"github.com/yaklabco/ruleslint/pkg/discovery"
	"github.com/yaklabco/ruleslint/pkg/validator"
)

const formatJSON = "json"

// catalogInfo is the JSON form of the section catalogs.
type catalogInfo struct {
	Required         []sectionInfo `json:"required"`
	Recommended      []sectionInfo `json:"recommended"`
	Workflows        []string      `json:"workflows"`
	RulesPaths       []string      `json:"rulesPaths"`
	FallbackKeywords []string      `json:"fallbackKeywords"`
}

type sectionInfo struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

func newSectionsCommand(globals *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List the sections and workflows a rules document is checked for",
		Long: `List the required and recommended section catalogs, the recognized
workflows, and the locations searched when the target is a directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := validator.New(config.Thresholds{})
			if format == formatJSON {
				return writeCatalogJSON(cmd.OutOrStdout(), v)
			}
			colorEnabled := pretty.IsColorEnabled(globals.color, cmd.OutOrStdout())
			return writeCatalogText(cmd.OutOrStdout(), pretty.NewStyles(colorEnabled), v)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func toSectionInfos(patterns []validator.SectionPattern) []sectionInfo {
	infos := make([]sectionInfo, 0, len(patterns))
	for _, p := range patterns {
		infos = append(infos, sectionInfo{Name: p.Name, Pattern: p.Matcher.String()})
	}
	return infos
}

func writeCatalogJSON(w io.Writer, v *validator.Validator) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	err := enc.Encode(catalogInfo{
		Required:         toSectionInfos(v.RequiredSections()),
		Recommended:      toSectionInfos(v.RecommendedSections()),
		Workflows:        v.WorkflowNames(),
		RulesPaths:       discovery.RulesPaths(),
		FallbackKeywords: discovery.FallbackKeywords(),
	})
	if err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return nil
}

func writeCatalogText(w io.Writer, styles *pretty.Styles, v *validator.Validator) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("%s\n", styles.Heading.Render("Required sections (missing is an error)"))
	for _, p := range v.RequiredSections() {
		printf("  %s %s\n", styles.Error.Render(pretty.MarkerError), p.Name)
	}

	printf("\n%s\n", styles.Heading.Render("Recommended sections (missing is a warning)"))
	for _, p := range v.RecommendedSections() {
		printf("  %s %s\n", styles.Warning.Render(pretty.MarkerWarning), p.Name)
	}

	printf("\n%s\n", styles.Heading.Render("Workflows (declare exactly one)"))
	for _, name := range v.WorkflowNames() {
		printf("  %s\n", name)
	}

	printf("\n%s\n", styles.Heading.Render("Rules file locations"))
	for _, p := range discovery.RulesPaths() {
		printf("  %s\n", styles.FilePath.Render(p))
	}
	printf("  %s\n", styles.Pattern.Render("fallback: *.md named with "+joinQuoted(discovery.FallbackKeywords())))

	return err
}

func joinQuoted(words []string) string {
	var out string
	for i, w := range words {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%q", w)
	}
	return out
}
