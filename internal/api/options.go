package api

import (
	"log/slog"
	"net/http"
)

// handlerOptions holds settings shared by the resource handlers.
type handlerOptions struct {
	duplicates duplicateStatus
	logger     *slog.Logger
}

// HandlerOption configures a resource handler.
type HandlerOption func(*handlerOptions)

// WithLegacyDuplicateStatus makes name collisions answer 404 Not Found, as the
// first release of the API did, instead of 409 Conflict.
func WithLegacyDuplicateStatus(enabled bool) HandlerOption {
	return func(o *handlerOptions) {
		if enabled {
			o.duplicates = duplicateStatus(http.StatusNotFound)
		} else {
			o.duplicates = 0
		}
	}
}

// WithLogger sets the handler's base logger.
func WithLogger(l *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func newHandlerOptions(component string, opts []HandlerOption) handlerOptions {
	o := handlerOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.With("component", component)
	return o
}
