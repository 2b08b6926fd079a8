package http

import (
	"time"

	"spyglass-srv/internal/analysis"
	"spyglass-srv/internal/model"
	"spyglass-srv/internal/presentation"
	"spyglass-srv/pkg/markdown"
)

type analyzeReq struct {
	Competitors []string `json:"competitors" binding:"required"`
	Mode        string   `json:"mode"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	return analysis.AnalyzeInput{
		Competitors: r.Competitors,
		Mode:        r.Mode,
	}
}

type presentReq struct {
	HistoryID string
}

func (r presentReq) toInput() analysis.PresentInput {
	return analysis.PresentInput{HistoryID: r.HistoryID}
}

type muteReq struct {
	Muted     *bool `json:"muted" binding:"required"`
	Confirmed bool  `json:"confirmed"`
}

func (r muteReq) toInput() analysis.SetMuteInput {
	return analysis.SetMuteInput{
		Muted:     *r.Muted,
		Confirmed: r.Confirmed,
	}
}

type clearHistoryReq struct {
	Confirm bool `form:"confirm"`
}

func (r clearHistoryReq) toInput() analysis.ClearHistoryInput {
	return analysis.ClearHistoryInput{Confirmed: r.Confirm}
}

type historyItemResp struct {
	ID          string   `json:"id"`
	Competitors []string `json:"competitors"`
	Report      string   `json:"report,omitempty"`
	Date        string   `json:"date"`
}

type analyzeResp struct {
	Item       historyItemResp `json:"item"`
	Mode       string          `json:"mode"`
	Generation uint64          `json:"generation"`
	Sections   int             `json:"sections"`
}

type sectionResp struct {
	Index    int    `json:"index"`
	Heading  string `json:"heading"`
	Markdown string `json:"markdown"`
	Display  string `json:"display"`
	HTML     string `json:"html"`
}

type trafficResp struct {
	Competitor    string  `json:"competitor"`
	OrganicSearch float64 `json:"organic_search"`
	PaidSearch    float64 `json:"paid_search"`
	Social        float64 `json:"social"`
	Direct        float64 `json:"direct"`
	Referral      float64 `json:"referral"`
}

type presentationResp struct {
	Generation uint64        `json:"generation"`
	State      string        `json:"state"`
	Total      int           `json:"total"`
	Revealed   int           `json:"revealed"`
	Sections   []sectionResp `json:"sections"`
	Traffic    []trafficResp `json:"traffic"`
	Muted      bool          `json:"muted"`
}

type workspaceResp struct {
	Loading      bool             `json:"loading"`
	Current      *historyItemResp `json:"current,omitempty"`
	Highlight    string           `json:"highlight,omitempty"`
	Presentation presentationResp `json:"presentation"`
}

type narrationResp struct {
	ClipID     string `json:"clip_id,omitempty"`
	Text       string `json:"text,omitempty"`
	Voice      string `json:"voice,omitempty"`
	WAVBase64  string `json:"wav_base64,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`
	Stop       bool   `json:"stop,omitempty"`
}

type eventResp struct {
	Generation uint64         `json:"generation"`
	State      string         `json:"state"`
	Total      int            `json:"total"`
	Revealed   int            `json:"revealed"`
	Muted      bool           `json:"muted"`
	Section    *sectionResp   `json:"section,omitempty"`
	Traffic    []trafficResp  `json:"traffic,omitempty"`
	Narration  *narrationResp `json:"narration,omitempty"`
	HistoryID  string         `json:"history_id,omitempty"`
}

func newHistoryItemResp(it model.HistoryItem, withReport bool) historyItemResp {
	resp := historyItemResp{
		ID:          it.ID,
		Competitors: it.Competitors,
		Date:        it.Date.UTC().Format(time.RFC3339Nano),
	}
	if withReport {
		resp.Report = it.Report
	}
	return resp
}

func (h *handler) newAnalyzeResp(o analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Item:       newHistoryItemResp(o.Item, true),
		Mode:       o.Mode,
		Generation: o.Generation,
		Sections:   o.Sections,
	}
}

func newSectionResp(s presentation.RevealedSection) sectionResp {
	return sectionResp{
		Index:    s.Index,
		Heading:  s.Heading,
		Markdown: s.Markdown,
		Display:  s.Display,
		HTML:     s.HTML,
	}
}

func newTrafficResp(records []markdown.TrafficRecord) []trafficResp {
	resp := make([]trafficResp, 0, len(records))
	for _, r := range records {
		resp = append(resp, trafficResp{
			Competitor:    r.Competitor,
			OrganicSearch: r.OrganicSearch,
			PaidSearch:    r.PaidSearch,
			Social:        r.Social,
			Direct:        r.Direct,
			Referral:      r.Referral,
		})
	}
	return resp
}

func (h *handler) newWorkspaceResp(o analysis.WorkspaceOutput) workspaceResp {
	snap := o.Presentation
	sections := make([]sectionResp, 0, len(snap.Sections))
	for _, s := range snap.Sections {
		sections = append(sections, newSectionResp(s))
	}

	resp := workspaceResp{
		Loading:   o.Loading,
		Highlight: o.Highlight,
		Presentation: presentationResp{
			Generation: snap.Generation,
			State:      string(snap.State),
			Total:      snap.Total,
			Revealed:   len(snap.Sections),
			Sections:   sections,
			Traffic:    newTrafficResp(snap.Traffic),
			Muted:      snap.Muted,
		},
	}
	if o.Current != nil {
		current := newHistoryItemResp(*o.Current, false)
		resp.Current = &current
	}
	return resp
}

func (h *handler) newEventResp(evt presentation.Event) eventResp {
	resp := eventResp{
		Generation: evt.Generation,
		State:      string(evt.State),
		Total:      evt.Total,
		Revealed:   evt.Revealed,
		Muted:      evt.Muted,
		HistoryID:  evt.HistoryID,
	}
	if evt.Section != nil {
		s := newSectionResp(*evt.Section)
		resp.Section = &s
		resp.Traffic = newTrafficResp(evt.Traffic)
	}
	if evt.Type == presentation.EventNarration {
		if evt.Narration == nil {
			resp.Narration = &narrationResp{Stop: true}
		} else {
			resp.Narration = &narrationResp{
				ClipID:     evt.Narration.ClipID,
				Text:       evt.Narration.Text,
				Voice:      evt.Narration.Voice,
				WAVBase64:  evt.Narration.WAVBase64,
				DurationMs: evt.Narration.DurationMs,
			}
		}
	}
	return resp
}
