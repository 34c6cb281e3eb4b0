package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  config.ResolvedModel(),
	}, nil
}

// Complete sends the conversation as a single-turn generation request.
// System messages become the model's system instruction; the remaining
// messages are concatenated into the user turn.
func (c *GeminiClient) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	model := c.client.GenerativeModel(c.model)

	var parts []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		parts = append(parts, m.Content)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(strings.Join(parts, "\n\n")))
	if err != nil {
		return nil, err
	}

	content, finish, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, err
	}

	completion := &Completion{
		Model:        c.model,
		Content:      content,
		FinishReason: finish,
	}
	if resp.UsageMetadata != nil {
		completion.Usage = Usage{
			PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return completion, nil
}

// Model returns the model identifier used for requests
func (c *GeminiClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, string, error) {
	if len(resp.Candidates) == 0 {
		return "", "", &APICallError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", "", &APICallError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", "", &APICallError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), candidate.FinishReason.String(), nil
}
