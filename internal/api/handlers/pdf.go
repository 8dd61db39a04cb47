package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/deepgram/neuroscan/internal/services/document"
	"github.com/deepgram/neuroscan/pkg/httpext"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func HandlePDF(documentService document.Service, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	docType, err := document.ParseType(mux.Vars(r)["type"])
	if err != nil {
		logger.Warn().Err(err).Msg("Invalid PDF type requested")
		httpext.Text(w, "Invalid PDF type", http.StatusBadRequest)
		return
	}

	doc, err := documentService.Render(docType)
	if err != nil {
		logger.Error().Err(err).Str("type", string(docType)).Msg("PDF error")
		httpext.Text(w, "Error generating PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", document.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Data); err != nil {
		logger.Warn().Err(err).Msg("Failed to write PDF")
	}
}
