package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deepgram/neuroscan/internal/infrastructure/deepgram"
	"github.com/rs/zerolog/log"
)

const (
	// maxAudioBytes guards against unbounded responses
	maxAudioBytes = 10 << 20

	// maxSpeakChars is the longest text /v1/speak accepts
	maxSpeakChars = 2000
)

// DeepgramSynthesizer voices text through the Deepgram /v1/speak REST endpoint
type DeepgramSynthesizer struct {
	service *deepgram.Service
	model   string
	timeout time.Duration
}

func NewDeepgramSynthesizer(service *deepgram.Service, model string, timeout time.Duration) (*DeepgramSynthesizer, error) {
	if service == nil {
		return nil, errors.New("deepgram service is required")
	}
	return &DeepgramSynthesizer{service: service, model: model, timeout: timeout}, nil
}

func (s *DeepgramSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", ErrSynthesis)
	}

	if spoken := truncateSpeech(text, maxSpeakChars); len(spoken) < len(text) {
		log.Debug().
			Int("chars", utf8.RuneCountInString(text)).
			Int("spoken_chars", utf8.RuneCountInString(spoken)).
			Msg("Reply exceeds the Deepgram speak limit, voicing the leading part")
		text = spoken
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	query := url.Values{}
	query.Set("model", s.model)
	query.Set("encoding", "mp3")

	resp, err := s.service.MakeRequest(ctx, http.MethodPost, "/v1/speak?"+query.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("Deepgram speak request rejected")
		return nil, fmt.Errorf("%w: deepgram returned status %d", ErrSynthesis, resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio", ErrSynthesis)
	}

	return audio, nil
}

// truncateSpeech shortens text to at most limit characters, cutting after the
// last complete sentence when one ends in the second half, else at the last space
func truncateSpeech(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])
	if i := strings.LastIndexAny(cut, ".!?"); i >= len(cut)/2 {
		return cut[:i+1]
	}
	if i := strings.LastIndex(cut, " "); i > 0 {
		return strings.TrimRight(cut[:i], " ")
	}
	return cut
}
