// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init sets the global level and writer. An unknown level falls back to info.
// Colors are only enabled in dev.
func Init(logLevel string, dev bool) {
	InitWithWriter(os.Stdout, logLevel, dev)
}

func InitWithWriter(out io.Writer, logLevel string, dev bool) {
	zerolog.TimeFieldFormat = timeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    !dev,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	log.Debug().
		Str("level", level.String()).
		Bool("dev", dev).
		Msg("logger initialized")
}
