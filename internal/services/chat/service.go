package chat

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrEmptyMessage is returned without contacting the API when the trimmed message is empty
	ErrEmptyMessage = errors.New("empty message")
	// ErrAssistantUnavailable wraps any failure talking to the completion API
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// Service defines the interface for chat operations
type Service interface {
	// Ask sends a single user message and returns the assistant's trimmed reply
	Ask(ctx context.Context, message string) (string, error)
}

// CompletionClient is the subset of the OpenAI client used by the assistant
type CompletionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}
