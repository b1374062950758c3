package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements CompletionProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// modelID is taken from configuration rather than hard-coded so blocking and
// streaming calls always target the same model.
func NewGeminiProvider(ctx context.Context, apiKey, modelID string, maxTokens int) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelID)
	model.SetMaxOutputTokens(int32(maxTokens))

	// Slightly creative but still grounded output for travel suggestions.
	model.SetTemperature(0.7)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// Complete sends the prompt and returns the first candidate's text.
func (p *GeminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	text := candidateText(resp)
	if text == "" {
		return "", fmt.Errorf("completion request failed: no response candidates")
	}
	return text, nil
}

// Stream sends the prompt and returns a pull-based chunk sequence.
func (p *GeminiProvider) Stream(ctx context.Context, prompt string) (Stream, error) {
	it := p.model.GenerateContentStream(ctx, genai.Text(prompt))
	return &geminiStream{it: it}, nil
}

// candidateText extracts and concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return b.String()
}
