// Package logger provides a global logger for the application
package logger

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

func initLogger() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()

	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	info := flag.Bool("info", false, "sets log level to info (default)")
	flag.Parse()

	environment := strings.ToLower(os.Getenv("ENVIRONMENT"))
	if environment == "" {
		environment = "prod"
	}

	var logLevel zerolog.Level
	switch environment {
	case "dev", "test":
		logLevel = zerolog.TraceLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	if *debug {
		logLevel = zerolog.DebugLevel
	} else if *trace {
		logLevel = zerolog.TraceLevel
	} else if *info {
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	log.Debug().Str("environment", environment).Str("level", logLevel.String()).Msg("Logger initialized")
}

// Init initializes the global zerolog logger from the environment and
// command line flags. Flags registered by the caller before Init are
// parsed together with the log level flags.
//
// Example usage:
//
//	logger.Init() <- inside whichever main() function in your entrypoint
//
// Then, `go run cmd/addnoise/main.go --debug ...`
func Init() {
	initLogger()
}
