package main

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/locale"
	"spyglass-srv/pkg/markdown"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	lang = locale.PT
	t.Cleanup(func() { lang = locale.DefaultLang })

	tcs := map[string]struct {
		err  error
		lang string
		want string
	}{
		"no competitors pt": {
			err:  analysis.ErrNoCompetitors,
			lang: locale.PT,
			want: "Por favor, insira pelo menos um concorrente.",
		},
		"wrapped not found en": {
			err:  fmt.Errorf("present: %w", history.ErrHistoryNotFound),
			lang: locale.EN,
			want: "Analysis not found in history.",
		},
		"unknown error": {
			err:  errors.New("disk full"),
			lang: locale.PT,
			want: "disk full",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			lang = tc.lang
			assert.Equal(t, tc.want, errorMessage(tc.err))
		})
	}
}

func TestPrinterSection(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	p := newPrinter(&buf)
	p.section(presentation.Event{
		Type:     presentation.EventSection,
		Total:    3,
		Revealed: 1,
		Section: &presentation.RevealedSection{
			Heading: "Resumo Executivo",
			Display: "## Resumo Executivo\nTexto do resumo.",
		},
	})
	p.traffic([]markdown.TrafficRecord{{Competitor: "Acme", OrganicSearch: 45, Direct: 10.5}})

	out := buf.String()
	assert.Contains(t, out, "[1/3] Resumo Executivo")
	assert.Contains(t, out, "Texto do resumo.")
	assert.NotContains(t, out, "## Resumo")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "45.0")
	assert.Contains(t, out, "10.5")
}
