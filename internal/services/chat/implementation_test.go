package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

func completion(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
		}},
	}
}

func TestNewServiceRequiresClient(t *testing.T) {
	_, err := NewService(nil, "", time.Second)
	assert.Error(t, err)
}

func TestAsk(t *testing.T) {
	tests := []struct {
		name      string
		message   string
		setupMock func(m *MockCompletionClient)
		wantReply string
		wantErr   error
	}{
		{
			name:      "Empty message",
			message:   "",
			setupMock: func(m *MockCompletionClient) {},
			wantErr:   ErrEmptyMessage,
		},
		{
			name:      "Whitespace message",
			message:   "   \t\n",
			setupMock: func(m *MockCompletionClient) {},
			wantErr:   ErrEmptyMessage,
		},
		{
			name:    "Successful reply is trimmed",
			message: "  What is a glioma?  ",
			setupMock: func(m *MockCompletionClient) {
				m.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
					return req.Model == openai.GPT4oMini &&
						req.MaxTokens == MaxReplyTokens &&
						req.Temperature == Temperature &&
						len(req.Messages) == 2 &&
						req.Messages[0].Role == openai.ChatMessageRoleSystem &&
						req.Messages[0].Content == SystemPrompt &&
						req.Messages[1].Role == openai.ChatMessageRoleUser &&
						req.Messages[1].Content == "What is a glioma?"
				})).Return(completion("\n A glioma is a tumor of glial cells. \n"), nil).Once()
			},
			wantReply: "A glioma is a tumor of glial cells.",
		},
		{
			name:    "API failure",
			message: "hello",
			setupMock: func(m *MockCompletionClient) {
				m.On("CreateChatCompletion", mock.Anything, mock.Anything).
					Return(openai.ChatCompletionResponse{}, errors.New("401 unauthorized")).Once()
			},
			wantErr: ErrAssistantUnavailable,
		},
		{
			name:    "No choices",
			message: "hello",
			setupMock: func(m *MockCompletionClient) {
				m.On("CreateChatCompletion", mock.Anything, mock.Anything).
					Return(openai.ChatCompletionResponse{}, nil).Once()
			},
			wantErr: ErrAssistantUnavailable,
		},
		{
			name:    "Blank reply",
			message: "hello",
			setupMock: func(m *MockCompletionClient) {
				m.On("CreateChatCompletion", mock.Anything, mock.Anything).
					Return(completion("   "), nil).Once()
			},
			wantErr: ErrAssistantUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockCompletionClient{}
			tt.setupMock(client)

			svc, err := NewService(client, "", time.Second)
			require.NoError(t, err)

			reply, err := svc.Ask(context.Background(), tt.message)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Empty(t, reply)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantReply, reply)
			}

			client.AssertExpectations(t)
			if tt.wantErr == ErrEmptyMessage {
				client.AssertNumberOfCalls(t, "CreateChatCompletion", 0)
			}
		})
	}
}

func TestAskAppliesTimeout(t *testing.T) {
	client := &MockCompletionClient{}
	client.On("CreateChatCompletion", mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= 50*time.Millisecond
	}), mock.Anything).Return(openai.ChatCompletionResponse{}, context.DeadlineExceeded).Once()

	svc, err := NewService(client, openai.GPT4oMini, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = svc.Ask(context.Background(), "hello")

	assert.True(t, errors.Is(err, ErrAssistantUnavailable))
	client.AssertExpectations(t)
}
