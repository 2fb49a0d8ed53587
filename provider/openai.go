package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAI generates images via an OpenAI-compatible images endpoint:
// POST {baseURL}/images/generations with response_format b64_json.
type OpenAI struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewOpenAI(baseURL, apiKey, model string, timeout time.Duration) *OpenAI {
	if model == "" {
		model = "dall-e-3"
	}
	return &OpenAI{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

type imagesGenerationsRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imagesGenerationsResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAI) Generate(ctx context.Context, prompt string, size string) (string, error) {
	payload := imagesGenerationsRequest{
		Model:          p.model,
		Prompt:         prompt,
		N:              1,
		Size:           size,
		ResponseFormat: "b64_json",
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/images/generations", p.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call image API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		// Surface the provider's own message when the body carries one
		var apiErr imagesGenerationsResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("image API returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("image API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result imagesGenerationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode image API response: %w", err)
	}

	if len(result.Data) == 0 || strings.TrimSpace(result.Data[0].B64JSON) == "" {
		return "", fmt.Errorf("image API returned no image data")
	}

	return result.Data[0].B64JSON, nil
}
