package config

import (
	"time"

	"github.com/deepgram/neuroscan/pkg/logger"
)

// GetOpenAIKey returns the OpenAI key, preferring OPENAI_KEY over OPENAI_API_KEY
func GetOpenAIKey() string {
	value := GetEnvOrDefault("OPENAI_KEY", "")
	if value == "" {
		value = GetEnvOrDefault("OPENAI_API_KEY", "")
	}
	if value == "" {
		logger.Warn(logger.CONFIG, "Failed to retrieve OpenAI key - OPENAI_KEY not set")
	}
	return value
}

// GetOpenAIBaseURL returns an optional override for the OpenAI API base URL
func GetOpenAIBaseURL() string {
	return GetEnvOrDefault("OPENAI_BASE_URL", "")
}

func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")
}

// GetChatTimeout bounds a single chat completion call
func GetChatTimeout() time.Duration {
	return parseEnvDuration("CHAT_TIMEOUT", 30*time.Second)
}
