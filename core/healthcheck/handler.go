// Package healthcheck provides liveness and readiness probe handlers that
// aggregate dependency checks such as pg.Healthcheck and redis.Healthcheck.
package healthcheck

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authkit/core/logger"
)

// Handler creates a probe handler. With no dependency functions it acts as a
// liveness probe and reports "ALIVE". With dependency functions it acts as a
// readiness probe: all must succeed for "READY", any failure is logged and
// answered with 503.
//
//	mux.Handle("/health/live", healthcheck.Handler(log))
//	mux.Handle("/health/ready", healthcheck.Handler(log,
//		pg.Healthcheck(pool),
//		redis.Healthcheck(client),
//	))
func Handler(log *slog.Logger, fn ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(fn) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, f := range fn {
			if err := f(r.Context()); err != nil {
				if log != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				}
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
