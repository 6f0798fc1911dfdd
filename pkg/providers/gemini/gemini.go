// Package gemini provides the client for the Google generative language
// API (generateContent) and the classification of its failures.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/sungkangmobil/showroom-assistant/pkg/providers/provider"
	"github.com/sungkangmobil/showroom-assistant/pkg/providers/usage"
)

// DefaultBaseURL is the production endpoint of the generative language API.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Generation parameters for every request. Output length is bounded and
// sampling is fixed so responses stay short and consistent in tone.
const (
	maxOutputTokens = 1000
	temperature     = 0.7
	topP            = 0.95
)

// Adapter is a client for the Gemini generateContent endpoint. The model
// identifier is passed per call so one adapter can serve an ordered list of
// candidate models.
type Adapter struct {
	provider.Client
}

// New creates an Adapter for the given base URL and API key.
func New(baseURL, apiKey string) *Adapter {
	a := &Adapter{}
	a.BaseURL = baseURL
	a.Auth = provider.Auth{
		Key:    apiKey,
		Header: "x-goog-api-key",
	}
	return a
}

// Generate issues exactly one generateContent request for the given model
// and returns the trimmed candidate text. The text may be empty even on
// success; callers must not assume non-empty output. Every failure,
// including safety blocks delivered inside a 200 response, is returned as
// an error suitable for Classify.
func (a *Adapter) Generate(ctx context.Context, model, promptText string) (string, error) {
	req := apiRequest{
		Contents: []apiContent{
			{Role: "user", Parts: []apiPart{{Text: promptText}}},
		},
		GenerationConfig: generationConfig{
			MaxOutputTokens: maxOutputTokens,
			Temperature:     temperature,
			TopP:            topP,
		},
		SafetySettings: defaultSafetySettings(),
	}
	path := fmt.Sprintf("/v1beta/models/%s:generateContent", model)

	var resp apiResponse
	if err := a.PostJSON(ctx, path, req, &resp); err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	a.Usage.Add(usage.TokenCount{
		PromptTokens:   resp.UsageMetadata.PromptTokenCount,
		ResponseTokens: resp.UsageMetadata.CandidatesTokenCount,
	})

	if reason := resp.PromptFeedback.BlockReason; reason != "" {
		return "", fmt.Errorf("gemini: prompt blocked by safety filter: %s", reason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty candidates in response")
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == "SAFETY" {
		return "", fmt.Errorf("gemini: response blocked by safety settings")
	}

	var b strings.Builder
	for _, p := range cand.Content.Parts {
		b.WriteString(p.Text)
	}

	return strings.TrimSpace(b.String()), nil
}

// defaultSafetySettings blocks only the highest-severity category for each
// of the four harm classes.
func defaultSafetySettings() []safetySetting {
	categories := []string{
		"HARM_CATEGORY_HARASSMENT",
		"HARM_CATEGORY_HATE_SPEECH",
		"HARM_CATEGORY_SEXUALLY_EXPLICIT",
		"HARM_CATEGORY_DANGEROUS_CONTENT",
	}

	settings := make([]safetySetting, len(categories))
	for i, c := range categories {
		settings[i] = safetySetting{Category: c, Threshold: "BLOCK_ONLY_HIGH"}
	}

	return settings
}

// --- request types ---

type apiRequest struct {
	Contents         []apiContent     `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings,omitempty"`
}

type apiContent struct {
	Role  string    `json:"role,omitempty"`
	Parts []apiPart `json:"parts"`
}

type apiPart struct {
	Text string `json:"text,omitempty"`
}

type generationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// --- response types ---

type apiResponse struct {
	Candidates     []apiCandidate    `json:"candidates"`
	PromptFeedback apiPromptFeedback `json:"promptFeedback"`
	UsageMetadata  apiUsageMeta      `json:"usageMetadata"`
}

type apiCandidate struct {
	Content      apiContent `json:"content"`
	FinishReason string     `json:"finishReason"`
}

type apiPromptFeedback struct {
	BlockReason string `json:"blockReason"`
}

type apiUsageMeta struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}
