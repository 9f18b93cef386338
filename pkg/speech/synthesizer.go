package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Synthesizer defines the contract for a speech synthesis backend.
// There is exactly one provider per deployment; callers treat failure as
// "no audio", never as a hard error.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// HuggingFaceTTS calls a text-to-speech model through the HuggingFace
// inference API and returns raw audio bytes.
type HuggingFaceTTS struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

var _ Synthesizer = &HuggingFaceTTS{}

func NewHuggingFaceTTS(apiKey, baseURL, model string) *HuggingFaceTTS {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	if model == "" {
		model = "facebook/mms-tts-eng"
	}
	return &HuggingFaceTTS{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ttsRequest struct {
	Inputs string `json:"inputs"`
}

func (s *HuggingFaceTTS) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	model := s.model
	if voice != "" {
		model = voice // Voice selection maps to a model override
	}

	payload, err := json.Marshal(ttsRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", s.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("tts returned empty audio")
	}

	return body, nil
}
