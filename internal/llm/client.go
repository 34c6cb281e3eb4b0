package llm

import (
	"context"
	"fmt"
)

// Role tags a conversation message
type Role string

// Roles accepted by the completion endpoint
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one role-tagged entry of the conversation sent to the endpoint
type Message struct {
	Role    Role
	Content string
}

// Usage is the resource accounting reported by the completion endpoint
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is the structured result of one completion call
type Completion struct {
	ID           string
	Model        string
	Content      string
	FinishReason string
	Usage        Usage
}

// Client is an abstraction over completion providers
type Client interface {
	// Complete sends the conversation to the endpoint and returns the first choice
	Complete(ctx context.Context, messages []Message) (*Completion, error)
	// Model returns the model identifier used for requests
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new completion client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}

// Conversation builds the fixed two-message conversation for a prompt:
// the system instruction followed by the rendered user prompt.
func Conversation(system, prompt string) []Message {
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: prompt},
	}
}
