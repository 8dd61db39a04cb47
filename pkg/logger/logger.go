package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	APP        = "APP"
	CHAT       = "CHAT"
	CLASSIFIER = "CLASSIFIER"
	CONFIG     = "CONFIG"
	DOCUMENT   = "DOCUMENT"
	HANDLER    = "HANDLER"
	MIDDLEWARE = "MIDDLEWARE"
	SERVICE    = "SERVICE"
	SPEECH     = "SPEECH"
)

func getLogLevel() zerolog.Level {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Init configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT
func Init() {
	zerolog.SetGlobalLevel(getLogLevel())
	zerolog.TimeFieldFormat = time.RFC3339
	// zerolog.Ctx falls back to the global logger for contexts without one
	zerolog.DefaultContextLogger = &log.Logger

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func Debug(namespace, format string, v ...interface{}) {
	log.Debug().Str("namespace", namespace).Msgf(format, v...)
}

func Info(namespace, format string, v ...interface{}) {
	log.Info().Str("namespace", namespace).Msgf(format, v...)
}

func Warn(namespace, format string, v ...interface{}) {
	log.Warn().Str("namespace", namespace).Msgf(format, v...)
}

func Error(namespace, format string, v ...interface{}) {
	log.Error().Str("namespace", namespace).Msgf(format, v...)
}
