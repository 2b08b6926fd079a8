package markdown

import (
	"regexp"
	"strings"
)

// DefaultNarrationLimit bounds the text sent to speech synthesis, in runes.
const DefaultNarrationLimit = 500

var (
	headingMarker = regexp.MustCompile(`(?m)^\s*#+\s*`)
	emphasis      = regexp.MustCompile("[*_`]+")
	placeholder   = regexp.MustCompile(`\[SCREENSHOT_PLACEHOLDER_FOR_.*?\]`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
)

// NarrationText turns section content into text for speech: heading markers,
// emphasis and screenshot placeholders are removed and the result is cut to
// limit runes. A limit <= 0 uses DefaultNarrationLimit.
func NarrationText(content string, limit int) string {
	if limit <= 0 {
		limit = DefaultNarrationLimit
	}

	text := placeholder.ReplaceAllString(content, "")
	text = headingMarker.ReplaceAllString(text, "")
	text = emphasis.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if len(runes) > limit {
		text = strings.TrimSpace(string(runes[:limit]))
	}
	return text
}
