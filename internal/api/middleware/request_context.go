package middleware

import (
	"net/http"

	"retrohub/internal/api/handlers"
	"retrohub/internal/logging"
	"retrohub/internal/services"
)

// maxCorrelationIDLength caps client-supplied correlation ids.
const maxCorrelationIDLength = 128

// RequestContext attaches the correlation id and the client identity to the
// request context and echoes the id in the response header.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(handlers.CorrelationHeader)
		if id == "" || len(id) > maxCorrelationIDLength {
			id = handlers.NewCorrelationID()
		}
		w.Header().Set(handlers.CorrelationHeader, id)

		ctx := logging.WithCorrelationID(r.Context(), id)
		ctx = services.WithActor(ctx, ClientKey(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
