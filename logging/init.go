package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// init sets up the global zerolog parameters used by every Logger.
func init() {
	// Setup stack trace support and set the timestamp format to UNIX
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
