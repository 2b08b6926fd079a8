// Package markdown parses generated reports: top-level sections, the traffic
// comparison table, narration text and display rewriting.
package markdown

import (
	"regexp"
	"strings"
)

// sectionBoundary matches a level-2 heading. "###" does not match since the
// third character must be whitespace.
var sectionBoundary = regexp.MustCompile(`(?m)^##\s`)

// Section is one top-level part of a report.
type Section struct {
	Index   int    `json:"index"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// SplitSections splits a report on level-2 headings. Text before the first
// heading is dropped and blank sections are skipped. Content keeps its
// heading line and is trimmed.
func SplitSections(report string) []Section {
	locs := sectionBoundary.FindAllStringIndex(report, -1)
	if len(locs) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(locs))
	for i, loc := range locs {
		end := len(report)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		content := strings.TrimSpace(report[loc[0]:end])
		if content == "" {
			continue
		}
		sections = append(sections, Section{
			Index:   len(sections),
			Heading: headingOf(content),
			Content: content,
		})
	}
	return sections
}

// JoinSections concatenates section contents in order, separated by a blank
// line.
func JoinSections(sections []Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = s.Content
	}
	return strings.Join(parts, "\n\n")
}

func headingOf(content string) string {
	line := content
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		line = content[:i]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "##"))
}
