package markdown

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const placeholderImageURL = "https://placehold.co/800x450/21262d/8b949e/png?text=Placeholder+do+Site\n%s"

var (
	trafficSummary        = regexp.MustCompile(`## Resumo Comparativo das Fontes de Tráfego[\s\S]*?(\n\n|$)`)
	screenshotPlaceholder = regexp.MustCompile(`\[SCREENSHOT_PLACEHOLDER_FOR_(.*?)\]`)
)

// PrepareDisplay rewrites report markdown for rendering. The traffic summary
// block is removed since it is shown as a chart, and screenshot placeholders
// become placeholder images.
func PrepareDisplay(md string) string {
	if loc := trafficSummary.FindStringIndex(md); loc != nil {
		md = md[:loc[0]] + md[loc[1]:]
	}
	md = strings.TrimSpace(md)

	return screenshotPlaceholder.ReplaceAllStringFunc(md, func(m string) string {
		name := screenshotPlaceholder.FindStringSubmatch(m)[1]
		src := fmt.Sprintf(placeholderImageURL, encodeURIComponent(strings.TrimSpace(name)))
		return fmt.Sprintf("\n![Placeholder para o website de %s](%s)\n", name, src)
	})
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
