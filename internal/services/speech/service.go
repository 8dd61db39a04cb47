package speech

import (
	"context"
	"encoding/base64"
	"errors"
)

const DataURIPrefix = "data:audio/mp3;base64,"

var (
	// ErrSynthesis wraps every failure to produce audio for a reply
	ErrSynthesis = errors.New("speech synthesis failed")
	// ErrSynthesisDisabled is returned by the disabled provider
	ErrSynthesisDisabled = errors.New("speech synthesis disabled")
)

// Synthesizer converts English text to MP3 audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// DataURI embeds MP3 audio as a base64 data URI
func DataURI(audio []byte) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString(audio)
}

// Disabled is a Synthesizer that never produces audio
type Disabled struct{}

func (Disabled) Synthesize(context.Context, string) ([]byte, error) {
	return nil, ErrSynthesisDisabled
}
