package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/ruleslint/internal/ui/pretty"
)

// flagToken matches a flag name such as -r or --recursive at a word boundary.
var flagToken = regexp.MustCompile(`(^|[\s,])(--?[A-Za-z][\w-]*)`)

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":      h.styles.Heading.Render,
		"command":      h.styles.Bold.Render,
		"dim":          h.styles.Dim.Render,
		"flags":        h.styleFlags,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespaces,
	}
}

// styleFlags colors the flag names in pflag's usage block.
func (h *HelpFormatter) styleFlags(usages string) string {
	lines := strings.Split(strings.TrimRight(usages, "\n"), "\n")
	for i, line := range lines {
		lines[i] = flagToken.ReplaceAllStringFunc(line, func(match string) string {
			sub := flagToken.FindStringSubmatch(match)
			return sub[1] + h.styles.Success.Render(sub[2])
		})
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) render(name, text string, cmd *cobra.Command) error {
	tmpl, err := template.New(name).Funcs(h.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl.Execute(cmd.OutOrStdout(), cmd)
}

// ApplyToCommand applies styled help to cmd. Subcommands inherit it.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render("usage", usageTemplate, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render("help", helpTemplate, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
