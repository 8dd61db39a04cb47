package handlers

import (
	"context"

	"github.com/deepgram/neuroscan/internal/services/chat"
	"github.com/deepgram/neuroscan/internal/services/classifier"
	"github.com/deepgram/neuroscan/internal/services/document"
	"github.com/deepgram/neuroscan/internal/services/speech"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"
)

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Predict(ctx context.Context, data []byte) (classifier.Result, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(classifier.Result), args.Error(1)
}

type MockChat struct {
	mock.Mock
}

func (m *MockChat) Ask(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

type MockSynthesizer struct {
	mock.Mock
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	audio, _ := args.Get(0).([]byte)
	return audio, args.Error(1)
}

type MockDocuments struct {
	mock.Mock
}

func (m *MockDocuments) Render(t document.Type) (document.Document, error) {
	args := m.Called(t)
	return args.Get(0).(document.Document), args.Error(1)
}

// stubProvider satisfies ServiceProvider with whatever the test wires in
type stubProvider struct {
	classifier classifier.Service
	chat       chat.Service
	speech     speech.Synthesizer
	documents  document.Service
}

func (p *stubProvider) GetClassifierService() classifier.Service { return p.classifier }
func (p *stubProvider) GetChatService() chat.Service             { return p.chat }
func (p *stubProvider) GetSpeechService() speech.Synthesizer     { return p.speech }
func (p *stubProvider) GetDocumentService() document.Service     { return p.documents }

// scoreModel is a classifier.Model returning a fixed score
type scoreModel struct {
	score float32
	err   error
	calls int
}

func (m *scoreModel) Score(ctx context.Context, tensor classifier.Tensor) (float32, error) {
	m.calls++
	return m.score, m.err
}
