package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/deepgram/neuroscan/internal/config"
	"github.com/deepgram/neuroscan/internal/infrastructure/deepgram"
	"github.com/deepgram/neuroscan/internal/infrastructure/openai"
	"github.com/deepgram/neuroscan/internal/services/chat"
	"github.com/deepgram/neuroscan/internal/services/classifier"
	"github.com/deepgram/neuroscan/internal/services/document"
	"github.com/deepgram/neuroscan/internal/services/speech"
	"github.com/rs/zerolog/log"
)

// ModelLoader loads the pretrained classifier; swapped out in tests
type ModelLoader func(cfg config.ClassifierConfig) (classifier.Model, error)

// LoadONNXModel is the production ModelLoader
func LoadONNXModel(cfg config.ClassifierConfig) (classifier.Model, error) {
	model, err := classifier.LoadONNXModel(cfg)
	if err != nil {
		return nil, err
	}
	return model, nil
}

type Services struct {
	classifierModel   classifier.Model
	classifierService classifier.Service
	chatService       chat.Service
	documentService   document.Service
	openAIService     *openai.Service
	speechService     speech.Synthesizer

	closeOnce sync.Once
}

// InitializeServices initializes all required services
func InitializeServices(cfg *config.Config, loadModel ModelLoader) (*Services, error) {
	log.Info().Msg("Initializing core services")

	// Classifier model is loaded once and held for the process lifetime
	model, err := loadModel(cfg.Classifier)
	if err != nil {
		log.Error().Err(err).Str("model_path", cfg.Classifier.ModelPath).Msg("Failed to load classifier model")
		return nil, fmt.Errorf("failed to load classifier model: %w", err)
	}
	classifierService, err := classifier.NewService(model, classifier.WithMaxImagePixels(cfg.Classifier.MaxImagePixels))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize classifier service: %w", err)
	}
	log.Info().Msg("Initializing classifier service")

	// Initialize OpenAI service (required)
	openAIService := openai.NewService(cfg.OpenAI)
	if openAIService == nil {
		closeModel(model)
		return nil, errors.New("OpenAI service is required for the assistant")
	}

	chatService, err := chat.NewService(openAIService.GetClient(), cfg.OpenAI.Model, cfg.OpenAI.Timeout)
	if err != nil {
		closeModel(model)
		return nil, fmt.Errorf("failed to initialize chat service: %w", err)
	}
	log.Info().Msg("Initializing chat service")

	speechService, err := newSynthesizer(cfg.Speech, openAIService)
	if err != nil {
		closeModel(model)
		return nil, fmt.Errorf("failed to initialize speech service: %w", err)
	}
	log.Info().Str("provider", cfg.Speech.Provider).Msg("Initializing speech service")

	documentService := document.NewGenerator()
	log.Info().Msg("Initializing document service")

	log.Info().Msg("All services initialized successfully")

	return &Services{
		classifierModel:   model,
		classifierService: classifierService,
		chatService:       chatService,
		documentService:   documentService,
		openAIService:     openAIService,
		speechService:     speechService,
	}, nil
}

func newSynthesizer(cfg config.SpeechConfig, openAIService *openai.Service) (speech.Synthesizer, error) {
	switch cfg.Provider {
	case config.SpeechProviderDeepgram:
		return speech.NewDeepgramSynthesizer(deepgram.NewService(cfg.DeepgramKey, cfg.DeepgramURL), cfg.DeepgramModel, cfg.Timeout)
	case config.SpeechProviderOpenAI:
		return speech.NewOpenAISynthesizer(openAIService.GetClient(), cfg.OpenAIModel, cfg.OpenAIVoice, cfg.Timeout)
	case config.SpeechProviderNone:
		log.Warn().Msg("Speech synthesis disabled - replies will carry no audio")
		return speech.Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown speech provider %q", cfg.Provider)
	}
}

func closeModel(model classifier.Model) {
	if closer, ok := model.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to release classifier model")
		}
	}
}

// Close releases the classifier model; later calls are no-ops
func (s *Services) Close() {
	s.closeOnce.Do(func() {
		closeModel(s.classifierModel)
	})
}

// GetClassifierService returns the classifier service
func (s *Services) GetClassifierService() classifier.Service {
	return s.classifierService
}

// GetChatService returns the chat service
func (s *Services) GetChatService() chat.Service {
	return s.chatService
}

// GetSpeechService returns the speech synthesizer
func (s *Services) GetSpeechService() speech.Synthesizer {
	return s.speechService
}

// GetDocumentService returns the document generator
func (s *Services) GetDocumentService() document.Service {
	return s.documentService
}
