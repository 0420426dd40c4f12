package log

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger wraps a configured zerolog.Logger.
type Logger struct {
	zerolog zerolog.Logger
}

// NewLogger builds a logger from the configuration. The level applies
// globally; errors logged with stack traces use pkg/errors stacks.
func NewLogger(ctx context.Context, config *Config) (*Logger, error) {
	logger := &Logger{}
	config.SetDefault()
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, errors.Wrap(err, "parse level")
	}

	zerolog.SetGlobalLevel(level)

	output := buildLoggerOutput(config.HumanFriendly, config.NoColoredOutput)

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger.zerolog = zerolog.New(output).With().Timestamp().Logger()

	return logger, nil
}

func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zerolog
}

func buildLoggerOutput(isHumanFriendly, isNoColoredOutput bool) io.Writer {
	if !isHumanFriendly {
		return os.Stderr
	}

	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    isNoColoredOutput,
		TimeFormat: time.RFC3339,
	}
}
