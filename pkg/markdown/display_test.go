package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareDisplay(t *testing.T) {
	t.Run("removes summary and expands placeholders", func(t *testing.T) {
		md := "# Dossiê\n\n## Resumo Comparativo das Fontes de Tráfego\n" + trafficHeaderLine +
			"\n|---|\n| A | 1 |\n\n# Análise: Acme Corp\n[SCREENSHOT_PLACEHOLDER_FOR_Acme Corp]\n\ntext"

		out := PrepareDisplay(md)
		assert.NotContains(t, out, "Resumo Comparativo")
		assert.NotContains(t, out, "| A | 1 |")
		assert.NotContains(t, out, "SCREENSHOT_PLACEHOLDER")
		assert.Contains(t, out, "# Dossiê\n\n# Análise: Acme Corp")
		assert.Contains(t, out, "\n![Placeholder para o website de Acme Corp](https://placehold.co/800x450/21262d/8b949e/png?text=Placeholder+do+Site\nAcme%20Corp)\n")
	})

	t.Run("summary at end of text", func(t *testing.T) {
		md := "intro\n\n## Resumo Comparativo das Fontes de Tráfego\n| a |"
		assert.Equal(t, "intro", PrepareDisplay(md))
	})

	t.Run("plain report unchanged", func(t *testing.T) {
		assert.Equal(t, "## A\ntext", PrepareDisplay("  ## A\ntext\n"))
	})
}

func TestRendererHTML(t *testing.T) {
	r := NewRenderer()
	html, err := r.HTML("## A\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.NoError(t, err)
	assert.Contains(t, html, "<h2>A</h2>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>1</td>")
}
