package telemetry

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
	logger = newLogger(os.Stdout, zerolog.InfoLevel)
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetOutput redirects log lines, keeping the current level.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

// SetLevel applies a level name such as "debug" or "warn". Unknown names fall
// back to info and report the parse error.
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	mu.Lock()
	logger = logger.Level(level)
	mu.Unlock()
	return err
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	current().Debug().Fields(fields).Msg(msg)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	current().Info().Fields(fields).Msg(msg)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	current().Warn().Fields(fields).Msg(msg)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	current().Error().Fields(fields).Msg(msg)
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}
