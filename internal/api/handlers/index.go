package handlers

import (
	"net/http"

	"github.com/deepgram/neuroscan/pkg/httpext"
	"github.com/deepgram/neuroscan/web"
)

func HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(web.IndexHTML())
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpext.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
