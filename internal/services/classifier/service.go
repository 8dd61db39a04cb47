package classifier

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/rs/zerolog/log"
)

const (
	LabelTumor   = "Tumor Detected"
	LabelNoTumor = "No Tumor"
	LabelError   = "Error"

	// DecisionThreshold is exclusive: a score of exactly 0.5 is "No Tumor"
	DecisionThreshold = 0.5
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrDecode           = errors.New("image could not be decoded")
	ErrInference        = errors.New("model inference failed")
)

// Result is the outcome of classifying one image
type Result struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ErrorResult is the placeholder reported whenever classification fails
func ErrorResult() Result {
	return Result{Label: LabelError, Confidence: 0}
}

// Decide maps a raw model score to a labelled result. The confidence is the raw score.
func Decide(score float32) Result {
	label := LabelNoTumor
	if score > DecisionThreshold {
		label = LabelTumor
	}
	return Result{Label: label, Confidence: float64(score)}
}

// Model is a pretrained binary classifier producing a tumor probability in [0,1]
type Model interface {
	Score(ctx context.Context, tensor Tensor) (float32, error)
}

// Service classifies uploaded image payloads
type Service interface {
	Predict(ctx context.Context, data []byte) (Result, error)
}

type Implementation struct {
	model     Model
	maxPixels int
}

type Option func(*Implementation)

// WithMaxImagePixels caps the declared area of images Predict will decode
func WithMaxImagePixels(n int) Option {
	return func(s *Implementation) {
		if n > 0 {
			s.maxPixels = n
		}
	}
}

func NewService(model Model, opts ...Option) (*Implementation, error) {
	if model == nil {
		return nil, errors.New("classifier model is required")
	}
	s := &Implementation{model: model, maxPixels: config.DefaultMaxImagePixels}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Predict preprocesses the payload and runs it through the model. On any
// failure it returns ErrorResult alongside an error wrapping one of
// ErrUnsupportedImage, ErrDecode or ErrInference.
func (s *Implementation) Predict(ctx context.Context, data []byte) (Result, error) {
	tensor, err := Preprocess(data, s.maxPixels)
	if err != nil {
		return ErrorResult(), err
	}

	score, err := s.model.Score(ctx, tensor)
	if err != nil {
		return ErrorResult(), fmt.Errorf("%w: %v", ErrInference, err)
	}

	if math.IsNaN(float64(score)) || score < 0 || score > 1 {
		return ErrorResult(), fmt.Errorf("%w: score %v outside [0,1]", ErrInference, score)
	}

	result := Decide(score)
	log.Debug().
		Str("label", result.Label).
		Float64("confidence", result.Confidence).
		Msg("Image classified")

	return result, nil
}
