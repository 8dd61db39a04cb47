package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deepgram/neuroscan/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

type Implementation struct {
	client  CompletionClient
	model   string
	timeout time.Duration
}

func NewService(client CompletionClient, model string, timeout time.Duration) (*Implementation, error) {
	if client == nil {
		return nil, errors.New("completion client is required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Implementation{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (s *Implementation) Ask(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	logger.Debug(logger.CHAT, "Requesting chat completion (%d chars)", len(message))

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
		MaxTokens:   MaxReplyTokens,
		Temperature: Temperature,
	})
	if err != nil {
		logger.Error(logger.CHAT, "Failed to get chat completion: %v", err)
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", ErrAssistantUnavailable)
	}

	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrAssistantUnavailable)
	}

	return reply, nil
}
