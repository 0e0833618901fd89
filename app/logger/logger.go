// Package logger owns the process-wide structured logger.
package logger

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type contextKey struct{}

// RequestIDKey carries the request id through a request's context.
var RequestIDKey = contextKey{}

var zlog = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Init configures the global logger: pretty console output in development,
// JSON everywhere else.
func Init(env string) {
	var w io.Writer
	if env == "development" || env == "dev" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "griddle").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// Get returns the global logger.
func Get() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger carrying a request_id field.
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// FromRequest returns a logger for the request, carrying its request id
// when the middleware has attached one.
func FromRequest(r *http.Request) *zerolog.Logger {
	if id, ok := r.Context().Value(RequestIDKey).(string); ok && id != "" {
		l := WithRequestID(id)
		return &l
	}
	return &zlog
}
