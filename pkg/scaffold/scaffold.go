// Package scaffold renders starter rules documents that pass validation.
package scaffold

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
	"text/template"
)

// Tool names and the rules locations they read.
//
//nolint:gochecknoglobals // Read-only lookup table.
var toolPaths = map[string]string{
	"ai-ide":         ".ai-ide/rules",
	"cursor":         ".cursor/rules",
	"github":         ".github/rules",
	"code-whisperer": ".code-whisperer/rules",
	"tabnine":        ".tabnine/rules",
}

// Tools returns the supported tool names in sorted order.
func Tools() []string {
	tools := make([]string, 0, len(toolPaths))
	for tool := range toolPaths {
		tools = append(tools, tool)
	}
	slices.Sort(tools)
	return tools
}

// PathFor returns the slash-separated rules path for a tool.
func PathFor(tool string) (string, error) {
	path, ok := toolPaths[strings.ToLower(tool)]
	if !ok {
		return "", fmt.Errorf("unknown tool %q; valid tools: %s", tool, strings.Join(Tools(), ", "))
	}
	return path, nil
}

// workflowSteps describes each supported workflow. The wording of one entry
// never names another workflow, so a rendered document declares exactly one.
//
//nolint:gochecknoglobals // Read-only lookup table.
var workflowSteps = map[string][]string{
	"Linear Workflow": {
		"Commit small changes directly to `main`.",
		"Rebase instead of merging so history stays linear.",
		"Every commit on `main` must build and pass tests.",
	},
	"Feature Branch Workflow": {
		"Start each change on a short-lived branch.",
		"Open a pull request and merge once checks pass.",
		"Delete the branch after merging.",
	},
	"Git Flow": {
		"Integrate work on `develop`.",
		"Cut `release/*` branches for stabilisation and `hotfix/*` for urgent fixes.",
		"Only release merges land on `main`.",
	},
	"Dev-First Workflow": {
		"All work lands on the `dev` branch first.",
		"Promote `dev` to `main` when a release is ready.",
		"Never commit to `main` directly.",
	},
}

// Workflows returns the supported workflow names in sorted order.
func Workflows() []string {
	names := make([]string, 0, len(workflowSteps))
	for name := range workflowSteps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultWorkflow is used when Options.Workflow is empty.
const DefaultWorkflow = "Feature Branch Workflow"

// Options controls template rendering.
type Options struct {
	// Project is the project name used in the title.
	Project string

	// Workflow is one of Workflows(). Empty means DefaultWorkflow.
	Workflow string
}

type templateData struct {
	Project  string
	Workflow string
	Steps    []string
}

// Render produces a starter rules document.
func Render(opts Options) (string, error) {
	workflow := opts.Workflow
	if workflow == "" {
		workflow = DefaultWorkflow
	}

	steps, ok := workflowSteps[workflow]
	if !ok {
		return "", fmt.Errorf("unknown workflow %q; valid workflows: %s", workflow, strings.Join(Workflows(), ", "))
	}

	project := opts.Project
	if project == "" {
		project = "Project"
	}

	var buf bytes.Buffer
	if err := rulesTemplate.Execute(&buf, templateData{Project: project, Workflow: workflow, Steps: steps}); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

//nolint:gochecknoglobals // Parsed once.
var rulesTemplate = template.Must(template.New("rules").Parse(`# {{.Project}} Rules

These rules tell AI coding assistants how to work in {{.Project}}.

## Git Workflow

This repository follows the {{.Workflow}}.
{{range .Steps}}
- {{.}}
{{- end}}

## Commit Standards

Write commit messages as ` + "`type: description`" + `.
Allowed types: feat, fix, docs, style, refactor, test, chore.

Examples:

- ` + "`feat: add export command`" + `
- ` + "`fix: handle empty configuration file`" + `
- ` + "`docs: describe release process`" + `
- ` + "`chore: bump dependencies`" + `

## Semantic Versioning

Versions follow MAJOR.MINOR.PATCH+BUILD.

- Increment MAJOR for breaking changes.
- Increment MINOR for new features.
- Increment PATCH for fixes.
- BUILD counts builds of the same release, for example v1.4.2+17.

## Forbidden Operations

- Never force-push shared branches.
- Never commit secrets or credentials.
- Never delete or move published tags.

## Healthy Project

- The full test suite passes before every commit.
- The build has no warnings.
- Dependencies are kept current.

## Version Management

- The version lives in one place and is bumped by the release commit.
- Every release is tagged.

## Performance

- Measure before optimising.
- Keep startup and hot paths free of unnecessary work.

## Startup Architecture

- Keep the design simple until the project proves it needs more.

## Critical Violations

- Committing broken code to a shared branch.
- Skipping tests to ship faster.
`))
