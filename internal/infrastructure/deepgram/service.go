package deepgram

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Service struct {
	Client  *http.Client `json:"-"`
	RestURL string       `json:"rest_url"`
	Headers http.Header  `json:"-"`
}

// NewService returns a Deepgram REST client, or nil when no API key is configured
func NewService(token, restURL string) *Service {
	if token == "" {
		log.Warn().Msg("Deepgram API key not configured - service will be unavailable")
		return nil
	}

	headers := http.Header{}
	headers.Add("Authorization", "token "+token)

	s := &Service{
		Client:  &http.Client{},
		RestURL: restURL,
		Headers: headers,
	}

	log.Info().
		Str("rest_url", s.RestURL).
		Msg("Deepgram service initialized successfully")

	return s
}

// MakeRequest makes a request to the Deepgram REST API
func (s *Service) MakeRequest(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, s.RestURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header = s.Headers.Clone()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return s.Client.Do(req)
}
