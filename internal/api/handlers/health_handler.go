// internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"

	"retrohub/internal/models"
)

// HealthCheck is a simple public endpoint to confirm the server is running.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
}
