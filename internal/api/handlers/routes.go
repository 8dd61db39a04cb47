package handlers

import (
	"net/http"

	"github.com/deepgram/neuroscan/internal/api/middleware"
	"github.com/deepgram/neuroscan/internal/services/chat"
	"github.com/deepgram/neuroscan/internal/services/classifier"
	"github.com/deepgram/neuroscan/internal/services/document"
	"github.com/deepgram/neuroscan/internal/services/speech"
	"github.com/deepgram/neuroscan/web"
	"github.com/gorilla/mux"
)

// ServiceProvider exposes the adapters the routes are composed from
type ServiceProvider interface {
	GetClassifierService() classifier.Service
	GetChatService() chat.Service
	GetSpeechService() speech.Synthesizer
	GetDocumentService() document.Service
}

type RouteConfig struct {
	MaxUploadBytes int64
}

func RegisterRoutes(router *mux.Router, services ServiceProvider, cfg RouteConfig) {
	router.Use(middleware.RequestID, middleware.AccessLog, middleware.Recover)

	router.HandleFunc("/", HandleIndex).Methods("GET")
	router.HandleFunc("/healthz", HandleHealth).Methods("GET")
	router.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))),
	).Methods("GET")

	router.HandleFunc("/predict", func(w http.ResponseWriter, r *http.Request) {
		HandlePredict(services.GetClassifierService(), cfg.MaxUploadBytes, w, r)
	}).Methods("POST")

	router.HandleFunc("/chat", func(w http.ResponseWriter, r *http.Request) {
		HandleChat(services.GetChatService(), services.GetSpeechService(), w, r)
	}).Methods("POST")

	router.HandleFunc("/pdf/{type}", func(w http.ResponseWriter, r *http.Request) {
		HandlePDF(services.GetDocumentService(), w, r)
	}).Methods("GET")
}
