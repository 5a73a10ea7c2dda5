package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the shared logger. Init must run before the first write.
var Log zerolog.Logger

// Init configures the global logger for the given environment: pretty
// console output in development, quiet in tests, JSON everywhere else.
func Init(env string) {
	zerolog.TimeFieldFormat = time.RFC3339

	switch env {
	case "development":
		Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
	case "test":
		Log = zerolog.New(os.Stdout).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Logger()
	default:
		Log = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}
}

func Info() *zerolog.Event  { return Log.Info() }
func Error() *zerolog.Event { return Log.Error() }
func Warn() *zerolog.Event  { return Log.Warn() }
func Debug() *zerolog.Event { return Log.Debug() }
func Fatal() *zerolog.Event { return Log.Fatal() }
