package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com"

	maxPromptSubjects = 10
	maxPromptFiles    = 30
)

// OpenAI is a minimal client for the OpenAI Responses API.
type OpenAI struct {
	apiKey     string
	model      string
	style      string
	httpClient *http.Client

	// BaseURL is overridable for tests
	BaseURL string
}

// NewOpenAI creates a Responses API summarizer
func NewOpenAI(apiKey, model, style string) *OpenAI {
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		style:  style,
		httpClient: &http.Client{
			Timeout: 45 * time.Second,
		},
		BaseURL: defaultOpenAIBaseURL,
	}
}

type responsesPayload struct {
	Model string           `json:"model"`
	Input []responsesInput `json:"input"`
}

type responsesInput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Summarize sends the push data to the Responses API and returns the
// rewritten post text.
func (c *OpenAI) Summarize(ctx context.Context, req Request) (string, error) {
	if len(req.Subjects) > maxPromptSubjects {
		req.Subjects = req.Subjects[:maxPromptSubjects]
	}
	if len(req.Files) > maxPromptFiles {
		req.Files = req.Files[:maxPromptFiles]
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal prompt data: %w", err)
	}

	payload := responsesPayload{
		Model: c.model,
		Input: []responsesInput{
			{
				Role:    "system",
				Content: fmt.Sprintf("You are rewriting a LinkedIn devlog post.\n\nSTYLE GUIDE:\n%s", c.style),
			},
			{
				Role:    "user",
				Content: fmt.Sprintf("Rewrite this as a short LinkedIn post.\n\nDATA:\n%s", data),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal openai payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/responses", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("openai responded with status %s", resp.Status)
	}

	var parsed struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}

	for _, item := range parsed.Output {
		for _, content := range item.Content {
			if content.Type == "output_text" && content.Text != "" {
				return content.Text, nil
			}
		}
	}
	return "", nil
}
