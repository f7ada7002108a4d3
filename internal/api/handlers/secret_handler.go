// filepath: internal/api/handlers/secret_handler.go
package handlers

import (
	"net/http"

	"retrohub/internal/logging"
	"retrohub/internal/models"
)

// @Summary Process sensitive info
// @Description Requires the configured secret key and never returns it.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} Problem
// @Router /secret-info [get]
func (h *Handlers) SecretInfo(w http.ResponseWriter, r *http.Request) {
	if h.Cfg == nil || h.Cfg.SecretKey == "" {
		logging.Log.Error("SecretInfo: no secret key configured")
		respondInternal(w, r)
		return
	}
	respondWithJSON(w, http.StatusOK, models.MessageResponse{Message: "Sensitive info processed successfully"})
}
