package httpext

import (
	"encoding/json"
	"net/http"

	"github.com/deepgram/neuroscan/pkg/logger"
)

// ErrorResponse represents a standardised JSON error response
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// JsonError writes a JSON error response with the specified status code
func JsonError(w http.ResponseWriter, message string, code int) {
	JSON(w, code, ErrorResponse{Error: message})
}

// JSON writes v as a JSON body with the specified status code
func JSON(w http.ResponseWriter, code int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error(logger.HANDLER, "Failed to encode response: %v", err)
		http.Error(w, "{\"error\":\"Internal Server Error\"}", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.Warn(logger.HANDLER, "Failed to write response: %v", err)
	}
}

// Text writes a plain text body with the specified status code
func Text(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(message)); err != nil {
		logger.Warn(logger.HANDLER, "Failed to write response: %v", err)
	}
}
