// Package service sits between the HTTP handlers and the repositories. It
// logs store faults and publishes change events after successful writes.
package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"resume-service/internal/events"
	"resume-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrNotFound is returned when the requested row does not exist.
var ErrNotFound = repository.ErrNotFound

// logFailure records err unless it is a plain not-found outcome.
func logFailure(err error, format string, args ...any) {
	if errors.Is(err, ErrNotFound) {
		logger.Debug().Err(err).Msgf(format, args...)
		return
	}
	logger.Error().Err(err).Msgf(format, args...)
}

// publish sends a change event. A broker failure never fails the write that
// already succeeded.
func publish(ctx context.Context, pub events.Publisher, event events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		logger.Warn().Err(err).Str("key", event.Key()).Msg("Error publishing change event")
	}
}
