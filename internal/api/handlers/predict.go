package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/deepgram/neuroscan/internal/services/classifier"
	"github.com/deepgram/neuroscan/pkg/httpext"
	"github.com/rs/zerolog"
)

const imageField = "image"

// HandlePredict classifies the multipart "image" upload. Every failure is
// reported as the Error placeholder with HTTP 200.
func HandlePredict(classifierService classifier.Service, maxUploadBytes int64, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	}

	file, header, err := r.FormFile(imageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			logger.Warn().Msg("Prediction request without image field")
		} else {
			logger.Warn().Err(err).Msg("Failed to read multipart upload")
		}
		httpext.JSON(w, http.StatusOK, classifier.ErrorResult())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read uploaded image")
		httpext.JSON(w, http.StatusOK, classifier.ErrorResult())
		return
	}

	result, err := classifierService.Predict(r.Context(), data)
	if err != nil {
		logger.Error().
			Err(err).
			Str("filename", header.Filename).
			Str("content_type", header.Header.Get("Content-Type")).
			Int("bytes", len(data)).
			Msg("Prediction failed")
		httpext.JSON(w, http.StatusOK, classifier.ErrorResult())
		return
	}

	logger.Info().
		Str("label", result.Label).
		Float64("confidence", result.Confidence).
		Msg("Prediction served")

	httpext.JSON(w, http.StatusOK, result)
}
