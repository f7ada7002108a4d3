package middleware

import (
	"net/http"

	gorillahandlers "github.com/gorilla/handlers"
)

// CORS allows credentialed requests from origins with any method and header.
func CORS(origins []string) func(http.Handler) http.Handler {
	return gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(origins),
		gorillahandlers.AllowCredentials(),
		gorillahandlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Correlation-ID", "X-Requested-With"}),
		gorillahandlers.ExposedHeaders([]string{"X-Correlation-ID", "Retry-After"}),
	)
}
