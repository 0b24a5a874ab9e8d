package validator

import "regexp"

// SectionPattern pairs a heading matcher with the section's display name.
type SectionPattern struct {
	Matcher *regexp.Regexp
	Name    string
}

// sectionPrefix matches a level-two (or deeper) heading marker. The search
// is unanchored, so "### Git Workflow" also matches.
const sectionPrefix = `(?i)##\s+`

func section(name, words string) SectionPattern {
	return SectionPattern{
		Matcher: regexp.MustCompile(sectionPrefix + words),
		Name:    name,
	}
}

func requiredSections() []SectionPattern {
	return []SectionPattern{
		section("Git Workflow", `git\s+workflows?`),
		section("Commit Standards", `commit\s+standards?`),
		section("Semantic Versioning", `semantic\s+versioning`),
		section("Forbidden Operations", `forbidden\s+operations?`),
		section("Healthy Project", `healthy\s+projects?`),
	}
}

func recommendedSections() []SectionPattern {
	return []SectionPattern{
		section("Version Management", `version\s+management`),
		section("Performance", `performance`),
		section("Startup Architecture", `startup\s+architectures?`),
		section("Critical Violations", `critical\s+violations?`),
	}
}

// workflowPattern is one of the mutually exclusive workflow declarations.
// Matching is a plain substring search, so a workflow named in passing
// prose counts as declared.
type workflowPattern struct {
	matcher *regexp.Regexp
	name    string
}

func workflowPatterns() []workflowPattern {
	return []workflowPattern{
		{regexp.MustCompile(`(?i)linear\s+workflow`), "Linear Workflow"},
		{regexp.MustCompile(`(?i)feature\s+branch\s+workflow`), "Feature Branch Workflow"},
		{regexp.MustCompile(`(?i)git\s+flow`), "Git Flow"},
		{regexp.MustCompile(`(?i)dev-first\s+workflow`), "Dev-First Workflow"},
	}
}
