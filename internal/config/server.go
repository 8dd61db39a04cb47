package config

import "time"

func GetPort() int {
	return parseEnvInt("PORT", 5000)
}

func GetUploadDir() string {
	return GetEnvOrDefault("UPLOAD_DIR", "uploads")
}

// GetMaxUploadBytes caps the size of a /predict request body
func GetMaxUploadBytes() int64 {
	return parseEnvInt64("MAX_UPLOAD_BYTES", 16<<20)
}

func GetServerReadTimeout() time.Duration {
	return parseEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
}

// GetServerWriteTimeout must exceed the chat and speech timeouts combined
func GetServerWriteTimeout() time.Duration {
	return parseEnvDuration("SERVER_WRITE_TIMEOUT", 90*time.Second)
}
