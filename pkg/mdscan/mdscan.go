// Package mdscan extracts inline structure from Markdown using goldmark.
package mdscan

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Scanner parses Markdown documents and extracts inline code spans.
// A Scanner is safe for concurrent use.
type Scanner struct {
	md goldmark.Markdown
}

// New creates a Scanner configured for GitHub Flavored Markdown.
func New() *Scanner {
	return &Scanner{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// CodeSpans returns the literal content of every inline code span in
// document order. Code inside fenced or indented code blocks is not an
// inline code span and is not returned.
func (s *Scanner) CodeSpans(content string) []string {
	source := []byte(content)
	doc := s.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	var spans []string
	//nolint:errcheck // The walker never returns an error.
	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		codeSpan, ok := node.(*ast.CodeSpan)
		if !ok {
			return ast.WalkContinue, nil
		}
		spans = append(spans, codeSpanText(codeSpan, source))
		return ast.WalkSkipChildren, nil
	})

	return spans
}

// codeSpanText returns the raw text between a code span's delimiters.
// goldmark drops one space from each end of a padded span; that space is
// restored so callers see the text exactly as written. Line endings inside
// a span are folded to spaces.
func codeSpanText(codeSpan *ast.CodeSpan, source []byte) string {
	var segments []text.Segment
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		if segment, ok := child.(*ast.Text); ok {
			segments = append(segments, segment.Segment)
		}
	}
	if len(segments) == 0 {
		return ""
	}

	first, last := &segments[0], &segments[len(segments)-1]
	if first.Start > 0 && source[first.Start-1] != '`' {
		first.Start--
	}
	if last.Stop < len(source) && source[last.Stop] != '`' {
		last.Stop++
	}

	var builder strings.Builder
	for _, segment := range segments {
		builder.Write(segment.Value(source))
	}
	return strings.ReplaceAll(builder.String(), "\n", " ")
}
