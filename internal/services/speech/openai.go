package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sashabaranov/go-openai"
)

// SpeechClient is the subset of the OpenAI client used for text-to-speech
type SpeechClient interface {
	CreateSpeech(ctx context.Context, request openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// OpenAISynthesizer voices text through the OpenAI speech endpoint
type OpenAISynthesizer struct {
	client  SpeechClient
	model   string
	voice   string
	timeout time.Duration
}

func NewOpenAISynthesizer(client SpeechClient, model, voice string, timeout time.Duration) (*OpenAISynthesizer, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	return &OpenAISynthesizer{client: client, model: model, voice: voice, timeout: timeout}, nil
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesis)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(io.LimitReader(resp, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}

	return audio, nil
}
