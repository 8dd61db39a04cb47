package config

func GetDeepgramAPIKey() string {
	return GetEnvOrDefault("DEEPGRAM_API_KEY", "")
}

func GetDeepgramURL() string {
	return GetEnvOrDefault("DEEPGRAM_URL", "https://api.deepgram.com")
}

func GetDeepgramTTSModel() string {
	return GetEnvOrDefault("DEEPGRAM_TTS_MODEL", "aura-asteria-en")
}
