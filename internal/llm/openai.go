package llm

import (
	"context"
	"errors"
	"net/http"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client using the official openai-go SDK (chat completions).
type OpenAIClient struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAIClient creates a new OpenAI chat completions client
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("API key is required")
	}

	return &OpenAIClient{
		model: config.ResolvedModel(),
		opts:  []option.RequestOption{option.WithAPIKey(apiKey)},
	}, nil
}

// Complete sends the conversation to the chat completions endpoint
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (*Completion, error) {
	client := openai.NewClient(c.opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(c.model),
		Messages: msgs,
	})
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			switch apierr.StatusCode {
			case http.StatusRequestTimeout, http.StatusGatewayTimeout:
				return nil, &TimeoutError{Cause: err}
			}
		}
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, &APICallError{Message: "empty choices in response"}
	}

	choice := resp.Choices[0]
	return &Completion{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
	}, nil
}

// Model returns the model identifier used for requests
func (c *OpenAIClient) Model() string {
	return c.model
}

// Close releases resources held by the client
func (c *OpenAIClient) Close() error {
	return nil
}
