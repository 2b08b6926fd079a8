package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/history"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/narration"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/locale"
	"spyglass-srv/pkg/markdown"

	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgHiCyan, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
	okColor      = color.New(color.FgHiGreen)
	warnColor    = color.New(color.FgYellow)
	errColor     = color.New(color.FgRed, color.Bold)
	nameColor    = color.New(color.FgHiMagenta)
)

type printer struct {
	w io.Writer
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w}
}

func (p *printer) failure(err error) {
	errColor.Fprint(p.w, "error: ")
	fmt.Fprintln(p.w, errorMessage(err))
}

func (p *printer) info(format string, args ...any) {
	dimColor.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) started(competitors []string, total int) {
	fmt.Fprintf(p.w, "%s %s\n", okColor.Sprint("▶"), nameColor.Sprint(strings.Join(competitors, ", ")))
	dimColor.Fprintf(p.w, "  %d sections\n\n", total)
}

func (p *printer) section(evt presentation.Event) {
	if evt.Section == nil {
		return
	}
	dimColor.Fprintf(p.w, "[%d/%d] ", evt.Revealed, evt.Total)
	headingColor.Fprintln(p.w, evt.Section.Heading)

	body := evt.Section.Display
	if strings.HasPrefix(body, "#") {
		_, body, _ = strings.Cut(body, "\n")
	}
	if body = strings.TrimSpace(body); body != "" {
		fmt.Fprintln(p.w, body)
	}
	fmt.Fprintln(p.w)
}

func (p *printer) traffic(records []markdown.TrafficRecord) {
	if len(records) == 0 {
		return
	}
	headingColor.Fprintln(p.w, "Traffic sources (%)")
	fmt.Fprintf(p.w, "  %-24s %8s %8s %8s %8s %8s\n", "Competitor", "Organic", "Paid", "Social", "Direct", "Referral")
	for _, r := range records {
		fmt.Fprintf(p.w, "  %s %8.1f %8.1f %8.1f %8.1f %8.1f\n",
			nameColor.Sprintf("%-24s", r.Competitor), r.OrganicSearch, r.PaidSearch, r.Social, r.Direct, r.Referral)
	}
	fmt.Fprintln(p.w)
}

func (p *printer) complete() {
	okColor.Fprintln(p.w, "✔ presentation complete")
}

func (p *printer) narration(path string, clip narration.Clip) {
	dimColor.Fprintf(p.w, "  ♪ %s (%s, %s)\n", path, clip.Voice, clip.Duration.Round(10*time.Millisecond))
}

func (p *printer) historyList(items []model.HistoryItem) {
	if len(items) == 0 {
		warnColor.Fprintln(p.w, "No analyses yet.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(p.w, "%s  %s  %s\n",
			dimColor.Sprint(item.ID),
			item.Date.Local().Format("2006-01-02 15:04"),
			nameColor.Sprint(strings.Join(item.Competitors, ", ")))
	}
}

func (p *printer) report(item model.HistoryItem) {
	fmt.Fprintf(p.w, "%s  %s\n\n", nameColor.Sprint(strings.Join(item.Competitors, ", ")), dimColor.Sprint(item.Date.Local().Format(time.RFC1123)))
	fmt.Fprintln(p.w, markdown.PrepareDisplay(item.Report))
}

// errorMessage translates known domain errors the same way the API does.
func errorMessage(err error) string {
	key := ""
	switch {
	case errors.Is(err, analysis.ErrNoCompetitors):
		key = "analysis.no_competitors"
	case errors.Is(err, analysis.ErrTooManyCompetitors):
		key = "analysis.too_many_competitors"
	case errors.Is(err, analysis.ErrCompetitorTooShort):
		key = "analysis.competitor_too_short"
	case errors.Is(err, analysis.ErrInvalidCompetitor):
		key = "analysis.competitor_invalid_chars"
	case errors.Is(err, analysis.ErrInvalidMode):
		key = "analysis.invalid_mode"
	case errors.Is(err, analysis.ErrAnalysisInProgress):
		key = "analysis.in_progress"
	case errors.Is(err, analysis.ErrReportGenerationFailed):
		key = "analysis.generation_failed"
	case errors.Is(err, analysis.ErrClearNotConfirmed):
		key = "history.clear_not_confirmed"
	case errors.Is(err, presentation.ErrMuteNotConfirmed):
		key = "analysis.mute_not_confirmed"
	case errors.Is(err, history.ErrHistoryNotFound):
		key = "history.not_found"
	default:
		return err.Error()
	}
	return locale.Translate(locale.ParseLang(lang), key)
}
