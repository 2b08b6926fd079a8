package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// StartVideo starts a long-running image-to-video generation and returns the
// operation name to poll.
func (g *geminiImpl) StartVideo(ctx context.Context, req VideoRequest) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	inst := videoInstance{Prompt: req.Prompt}
	if len(req.Image) > 0 {
		inst.Image = &videoImage{
			BytesBase64Encoded: base64.StdEncoding.EncodeToString(req.Image),
			MimeType:           req.MimeType,
		}
	}
	body := videoRequest{
		Instances: []videoInstance{inst},
		Parameters: videoParameters{
			AspectRatio: req.AspectRatio,
			Resolution:  VideoResolution,
			SampleCount: 1,
		},
	}

	url := fmt.Sprintf("%s/models/%s:predictLongRunning", g.apiRoot, g.cfg.VideoModel)
	respBody, statusCode, err := g.httpClient.Post(ctx, url, body, g.headers())
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		return "", &APIError{StatusCode: statusCode, Body: string(respBody)}
	}

	var op operationResponse
	if err := json.Unmarshal(respBody, &op); err != nil {
		return "", fmt.Errorf("failed to unmarshal operation: %w", err)
	}
	if op.Name == "" {
		return "", errors.New("gemini: operation has no name")
	}
	return op.Name, nil
}

// GetOperation polls a video operation.
func (g *geminiImpl) GetOperation(ctx context.Context, name string) (Operation, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return Operation{}, err
	}

	url := fmt.Sprintf("%s/%s", g.apiRoot, strings.TrimPrefix(name, "/"))
	respBody, statusCode, err := g.httpClient.Get(ctx, url, g.headers())
	if err != nil {
		return Operation{}, fmt.Errorf("failed to call Gemini API: %w", err)
	}
	if statusCode != http.StatusOK {
		return Operation{}, &APIError{StatusCode: statusCode, Body: string(respBody)}
	}

	var op operationResponse
	if err := json.Unmarshal(respBody, &op); err != nil {
		return Operation{}, fmt.Errorf("failed to unmarshal operation: %w", err)
	}

	out := Operation{Name: op.Name, Done: op.Done}
	if op.Error != nil {
		out.Error = op.Error.Message
	}
	if op.Response != nil && len(op.Response.GenerateVideoResponse.GeneratedSamples) > 0 {
		out.VideoURI = op.Response.GenerateVideoResponse.GeneratedSamples[0].Video.URI
	}
	if out.Done && out.Error == "" && out.VideoURI == "" {
		out.Error = "operation finished without a video"
	}
	return out, nil
}

// Download fetches a generated file. The API key is sent as a header.
func (g *geminiImpl) Download(ctx context.Context, uri string) ([]byte, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	body, statusCode, err := g.httpClient.Get(ctx, uri, g.headers())
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}
	if statusCode != http.StatusOK {
		return nil, &APIError{StatusCode: statusCode, Body: string(body)}
	}
	return body, nil
}
