package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. It discards everything until Init is called.
var Log = zerolog.Nop()

func Init(isDev bool) {
	InitWithWriter(isDev, os.Stdout)
}

func InitWithWriter(isDev bool, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = out
	if isDev {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	Log = zerolog.New(w).Level(levelFromEnv()).With().Timestamp().Logger()
}

func IsDev() bool {
	env := os.Getenv("ENV")
	return env == "" || env == "dev" || env == "development"
}

func levelFromEnv() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
