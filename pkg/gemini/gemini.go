package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Generate generates content based on the prompt.
func (g *geminiImpl) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (string, error) {
	o := generateOptions{model: g.cfg.Model}
	for _, opt := range opts {
		opt(&o)
	}

	req := Request{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: prompt},
				},
			},
		},
	}
	if o.googleSearch {
		req.Tools = []Tool{{GoogleSearch: &struct{}{}}}
	}

	resp, err := g.generateContent(ctx, o.model, req)
	if err != nil {
		return "", err
	}
	return resp.text()
}

func (g *geminiImpl) GenerateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	if voice == "" {
		voice = DefaultVoice
	}
	req := Request{
		Contents: []Content{{Parts: []Part{{Text: text}}}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{modalityAudio},
			SpeechConfig: &SpeechConfig{
				VoiceConfig: VoiceConfig{PrebuiltVoiceConfig: PrebuiltVoiceConfig{VoiceName: voice}},
			},
		},
	}

	resp, err := g.generateContent(ctx, g.cfg.SpeechModel, req)
	if err != nil {
		return nil, err
	}
	blob := resp.firstBlob()
	if blob == nil {
		return nil, fmt.Errorf("%w: no audio returned", ErrNoContent)
	}
	return decodeBlob(blob)
}

func (g *geminiImpl) EditImage(ctx context.Context, image []byte, mimeType, instruction string) ([]byte, string, error) {
	req := Request{
		Contents: []Content{{Parts: []Part{
			{InlineData: &Blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image)}},
			{Text: instruction},
		}}},
		GenerationConfig: &GenerationConfig{ResponseModalities: []string{modalityImage}},
	}

	resp, err := g.generateContent(ctx, g.cfg.ImageModel, req)
	if err != nil {
		return nil, "", err
	}
	blob := resp.firstBlob()
	if blob == nil {
		return nil, "", fmt.Errorf("%w: no image returned", ErrNoContent)
	}
	data, err := decodeBlob(blob)
	if err != nil {
		return nil, "", err
	}
	return data, blob.MimeType, nil
}

func (g *geminiImpl) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	req := Request{
		Contents: []Content{{Parts: []Part{
			{InlineData: &Blob{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(audio)}},
			{Text: TranscriptionPrompt},
		}}},
	}

	resp, err := g.generateContent(ctx, g.cfg.TranscriptionModel, req)
	if err != nil {
		return "", err
	}
	return resp.text()
}

func (g *geminiImpl) generateContent(ctx context.Context, model string, req Request) (*Response, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req.SafetySettings = safetySettings()

	url := fmt.Sprintf("%s/models/%s:generateContent", g.apiRoot, model)
	body, statusCode, err := g.httpClient.Post(ctx, url, req, g.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &APIError{StatusCode: statusCode, Body: string(body)}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Gemini response: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, ErrNoContent
	}
	return &resp, nil
}

func (g *geminiImpl) headers() map[string]string {
	return map[string]string{apiKeyHeader: g.apiKey}
}

func (r *Response) text() (string, error) {
	var b strings.Builder
	for _, part := range r.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", ErrNoContent
	}
	return b.String(), nil
}

func (r *Response) firstBlob() *Blob {
	for _, part := range r.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return part.InlineData
		}
	}
	return nil
}

func decodeBlob(b *Blob) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(b.Data)
	if err != nil {
		return nil, fmt.Errorf("gemini: decode inline data: %w", err)
	}
	return data, nil
}

func safetySettings() []SafetySetting {
	settings := make([]SafetySetting, 0, len(harmCategories))
	for _, c := range harmCategories {
		settings = append(settings, SafetySetting{Category: c, Threshold: "BLOCK_NONE"})
	}
	return settings
}
