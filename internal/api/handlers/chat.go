package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/deepgram/neuroscan/internal/services/chat"
	"github.com/deepgram/neuroscan/internal/services/speech"
	"github.com/deepgram/neuroscan/pkg/httpext"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const (
	EmptyMessageReply = "Please enter a message."
	FallbackReply     = "Sorry, cannot connect to assistant."
)

// maxChatBodyBytes bounds the JSON body of a chat request
const maxChatBodyBytes = 64 << 10

type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the reply and, when synthesis succeeded, an MP3 data URI
type ChatResponse struct {
	Reply string  `json:"reply"`
	Audio *string `json:"audio"`
}

// HandleChat answers a single message. Assistant failures produce the fixed
// fallback reply; a synthesis failure alone keeps the reply and drops the audio.
func HandleChat(chatService chat.Service, synthesizer speech.Synthesizer, w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var req ChatRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxChatBodyBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	reply, err := chatService.Ask(r.Context(), req.Message)
	if errors.Is(err, chat.ErrEmptyMessage) {
		httpext.JSON(w, http.StatusOK, ChatResponse{Reply: EmptyMessageReply})
		return
	}
	if err != nil {
		logger.Error().Err(err).Msg("Failed to process chat")
		httpext.JSON(w, http.StatusOK, ChatResponse{Reply: FallbackReply})
		return
	}

	resp := ChatResponse{Reply: reply}

	audio, err := synthesizer.Synthesize(r.Context(), reply)
	switch {
	case errors.Is(err, speech.ErrSynthesisDisabled):
		logger.Debug().Msg("Speech synthesis disabled")
	case err != nil:
		logger.Warn().Err(err).Msg("Speech synthesis failed, replying without audio")
	default:
		resp.Audio = lo.ToPtr(speech.DataURI(audio))
	}

	logger.Info().
		Int("reply_length", len(reply)).
		Bool("audio", resp.Audio != nil).
		Msg("Chat request processed successfully")

	httpext.JSON(w, http.StatusOK, resp)
}
