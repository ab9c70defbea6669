package internal

import (
	"asiapay/entity"
	"asiapay/services"
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger writes structured log lines tagged with a category. When a database is
// attached, warnings and errors are also stored in the payment log.
type Logger struct {
	category string
	database services.Database
	log      zerolog.Logger
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	return newLogger(os.Stdout, category, debug, database)
}

func newLogger(out io.Writer, category string, debug bool, database services.Database) *Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return &Logger{
		category: category,
		database: database,
		log:      zerolog.New(out).Level(level).With().Timestamp().Str("category", category).Logger(),
	}
}

func (l *Logger) Debug(text string) {
	l.log.Debug().Msg(text)
}

func (l *Logger) Info(text string) {
	l.log.Info().Msg(text)
}

func (l *Logger) Warn(text string) {
	l.log.Warn().Msg(text)
	l.store(zerolog.WarnLevel, text)
}

func (l *Logger) Error(text string, err error) {
	l.log.Error().Err(err).Msg(text)
	if err != nil {
		text = text + ": " + err.Error()
	}
	l.store(zerolog.ErrorLevel, text)
}

func (l *Logger) store(level zerolog.Level, text string) {
	if l.database == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	message := &entity.LogMessage{
		Time:     time.Now(),
		Level:    level.String(),
		Category: l.category,
		Text:     text,
	}
	if err := l.database.WriteLogMessage(ctx, message); err != nil {
		l.log.Error().Err(err).Msg("write log message")
	}
}
