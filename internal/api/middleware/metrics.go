package middleware

import (
	"net/http"
	"time"

	"retrohub/internal/logging"
	"retrohub/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Instrument counts requests per route template and writes an access log line
// at debug level. It must run inside the mux router so the route is known.
func Instrument(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			route := "unmatched"
			if current := mux.CurrentRoute(r); current != nil {
				if tpl, err := current.GetPathTemplate(); err == nil {
					route = tpl
				}
			}
			m.ObserveRequest(r.Method, route, rec.status)

			logging.Log.WithFields(logrus.Fields{
				"method":         r.Method,
				"route":          route,
				"status":         rec.status,
				"duration_ms":    time.Since(start).Milliseconds(),
				"correlation_id": logging.CorrelationID(r.Context()),
			}).Debug("request")
		})
	}
}
