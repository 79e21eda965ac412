package wire

import (
	"os"

	"github.com/rs/zerolog"
)

// Config controls optional cursor behaviors. The zero value decodes silently.
type Config struct {
	// Logger, when non-nil, receives one debug event per failed decode with
	// the operation, offset, remaining byte count and error. Successful
	// decodes never log.
	Logger *zerolog.Logger
}

// ConfigFromEnv builds a Config from environment toggles.
//
//	PROTOZERO_DEBUG=1|true   log failed decodes to stderr
func ConfigFromEnv() Config {
	var cfg Config
	if v := os.Getenv("PROTOZERO_DEBUG"); v == "1" || v == "true" {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Str("component", "protozero").Logger()
		cfg.Logger = &l
	}
	return cfg
}
