package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/deepgram/neuroscan/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           int           `validate:"min=1,max=65535"`
	UploadDir      string        `validate:"required"`
	MaxUploadBytes int64         `validate:"gt=0"`
	ReadTimeout    time.Duration `validate:"gt=0"`
	WriteTimeout   time.Duration `validate:"gt=0"`

	OpenAI     OpenAIConfig
	Speech     SpeechConfig
	Classifier ClassifierConfig
}

type OpenAIConfig struct {
	Key     string        `validate:"required"`
	BaseURL string        `validate:"omitempty,url"`
	Model   string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`
}

type SpeechConfig struct {
	Provider      string        `validate:"oneof=deepgram openai none"`
	DeepgramKey   string        `validate:"required_if=Provider deepgram"`
	DeepgramURL   string        `validate:"omitempty,url"`
	DeepgramModel string        `validate:"required_if=Provider deepgram"`
	OpenAIModel   string        `validate:"required_if=Provider openai"`
	OpenAIVoice   string        `validate:"required_if=Provider openai"`
	Timeout       time.Duration `validate:"gt=0"`
}

type ClassifierConfig struct {
	ModelPath      string `validate:"required"`
	LibPath        string
	InputName      string
	OutputName     string
	MaxImagePixels int    `validate:"gt=0"`
}

// LoadDotEnv loads variables from the given files (default .env) without
// overriding the environment. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug(logger.CONFIG, "No .env file found, using process environment")
			return nil
		}
		return fmt.Errorf("failed to load .env: %w", err)
	}
	logger.Info(logger.CONFIG, "Loaded environment from .env")
	return nil
}

// Load collects the configuration from the environment and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Port:           GetPort(),
		UploadDir:      GetUploadDir(),
		MaxUploadBytes: GetMaxUploadBytes(),
		ReadTimeout:    GetServerReadTimeout(),
		WriteTimeout:   GetServerWriteTimeout(),
		OpenAI: OpenAIConfig{
			Key:     GetOpenAIKey(),
			BaseURL: GetOpenAIBaseURL(),
			Model:   GetOpenAIModel(),
			Timeout: GetChatTimeout(),
		},
		Speech: SpeechConfig{
			Provider:      GetSpeechProvider(),
			DeepgramKey:   GetDeepgramAPIKey(),
			DeepgramURL:   GetDeepgramURL(),
			DeepgramModel: GetDeepgramTTSModel(),
			OpenAIModel:   GetOpenAITTSModel(),
			OpenAIVoice:   GetOpenAITTSVoice(),
			Timeout:       GetSpeechTimeout(),
		},
		Classifier: ClassifierConfig{
			ModelPath:      GetClassifierModelPath(),
			LibPath:        GetONNXRuntimeLibPath(),
			InputName:      GetClassifierInputName(),
			OutputName:     GetClassifierOutputName(),
			MaxImagePixels: GetMaxImagePixels(),
		},
	}

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info(logger.CONFIG, "Configuration loaded (port=%d, speech=%s, model=%s)", cfg.Port, cfg.Speech.Provider, cfg.Classifier.ModelPath)
	return cfg, nil
}
