package http

import (
	"encoding/base64"
	"strings"
	"time"

	"spyglass-srv/internal/media"
)

type editImageReq struct {
	ImageData string `json:"image_data" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
	Prompt    string `json:"prompt" binding:"required"`
}

func (r editImageReq) toInput() (media.EditImageInput, error) {
	img, err := decodeData(r.ImageData)
	if err != nil {
		return media.EditImageInput{}, err
	}
	return media.EditImageInput{Image: img, MimeType: r.MimeType, Prompt: r.Prompt}, nil
}

type transcribeReq struct {
	AudioData string `json:"audio_data" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
}

func (r transcribeReq) toInput() (media.TranscribeInput, error) {
	audio, err := decodeData(r.AudioData)
	if err != nil {
		return media.TranscribeInput{}, err
	}
	return media.TranscribeInput{Audio: audio, MimeType: r.MimeType}, nil
}

type speechReq struct {
	Text      string `json:"text" binding:"required"`
	VoiceName string `json:"voice_name"`
}

func (r speechReq) toInput() media.SpeechInput {
	return media.SpeechInput{Text: r.Text, Voice: r.VoiceName}
}

type summaryReq struct {
	ReportContent string `json:"report_content" binding:"required"`
}

func (r summaryReq) toInput() media.SummaryInput {
	return media.SummaryInput{ReportContent: r.ReportContent}
}

type createVideoReq struct {
	ImageData   string `json:"image_data" binding:"required"`
	MimeType    string `json:"mime_type" binding:"required"`
	Prompt      string `json:"prompt" binding:"required"`
	AspectRatio string `json:"aspect_ratio" binding:"required"`
}

func (r createVideoReq) toInput() (media.CreateVideoJobInput, error) {
	img, err := decodeData(r.ImageData)
	if err != nil {
		return media.CreateVideoJobInput{}, err
	}
	return media.CreateVideoJobInput{
		Image:       img,
		MimeType:    r.MimeType,
		Prompt:      r.Prompt,
		AspectRatio: r.AspectRatio,
	}, nil
}

// decodeData accepts plain base64 as well as data URLs.
func decodeData(s string) ([]byte, error) {
	if strings.HasPrefix(s, "data:") {
		_, s, _ = strings.Cut(s, ",")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errWrongBody
	}
	return b, nil
}

type editImageResp struct {
	ImageData string `json:"image_data"`
	MimeType  string `json:"mime_type"`
}

type transcribeResp struct {
	Text string `json:"text"`
}

type speechResp struct {
	Voice      string `json:"voice_name"`
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	ExpiresAt  string `json:"expires_at"`
	DurationMs int64  `json:"duration_ms"`
}

type summaryResp struct {
	Summary string `json:"summary"`
}

type videoJobResp struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	URL       string `json:"url,omitempty"`
	ExpiresAt string `json:"expires_at,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *handler) newEditImageResp(o media.EditImageOutput) editImageResp {
	return editImageResp{
		ImageData: base64.StdEncoding.EncodeToString(o.Image),
		MimeType:  o.MimeType,
	}
}

func (h *handler) newSpeechResp(o media.SpeechOutput) speechResp {
	return speechResp{
		Voice:      o.Voice,
		ObjectName: o.ObjectName,
		URL:        o.URL,
		ExpiresAt:  o.ExpiresAt.UTC().Format(time.RFC3339),
		DurationMs: o.Duration.Milliseconds(),
	}
}

func (h *handler) newVideoJobResp(o media.VideoJobOutput) videoJobResp {
	resp := videoJobResp{
		ID:        o.Job.ID,
		Status:    string(o.Job.Status),
		Error:     o.Job.Error,
		URL:       o.URL,
		CreatedAt: o.Job.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: o.Job.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if o.URL != "" {
		resp.ExpiresAt = o.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return resp
}
