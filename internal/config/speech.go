package config

import (
	"strings"
	"time"
)

const (
	SpeechProviderDeepgram = "deepgram"
	SpeechProviderOpenAI   = "openai"
	SpeechProviderNone     = "none"
)

// GetSpeechProvider returns which text-to-speech backend voices assistant replies
func GetSpeechProvider() string {
	return strings.ToLower(GetEnvOrDefault("SPEECH_PROVIDER", SpeechProviderDeepgram))
}

func GetOpenAITTSModel() string {
	return GetEnvOrDefault("OPENAI_TTS_MODEL", "tts-1")
}

func GetOpenAITTSVoice() string {
	return GetEnvOrDefault("OPENAI_TTS_VOICE", "alloy")
}

// GetSpeechTimeout bounds a single synthesis call
func GetSpeechTimeout() time.Duration {
	return parseEnvDuration("SPEECH_TIMEOUT", 30*time.Second)
}
