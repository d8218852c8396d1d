package logger

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	defaultLogger zerolog.Logger
	once          sync.Once
)

// Init initializes the default logger with a console writer on stderr.
// It is safe to call more than once; only the first call takes effect.
func Init(level string) {
	once.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || level == "" {
			lvl = zerolog.InfoLevel
		}
		defaultLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(lvl).
			With().Timestamp().Logger()
	})
}

// Get returns the initialized default logger, initializing it at info level
// if Init was never called. A pointer is returned because zerolog's level
// methods have pointer receivers.
func Get() *zerolog.Logger {
	Init("")
	return &defaultLogger
}

// Info logs an informational message.
func Info(msg string) {
	Get().Info().Msg(msg)
}

// Debug logs a debug message.
func Debug(msg string) {
	Get().Debug().Msg(msg)
}

// Error logs an error with its message.
func Error(msg string, err error) {
	Get().Error().Err(err).Msg(msg)
}
