// filepath: internal/api/handlers/retro_handler.go
package handlers

import (
	"errors"
	"net/http"

	"retrohub/internal/logging"
	"retrohub/internal/models"
	"retrohub/internal/services"
)

// respondRetroError maps service errors to problem responses.
func respondRetroError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		respondValidation(w, r, services.DetailOf(err, err.Error()))
	case errors.Is(err, services.ErrNotFound):
		respondNotFound(w, r, services.DetailOf(err, "Retro not found"))
	default:
		logging.Log.Errorf("%s: Unhandled error from RetroService: %v", op, err)
		respondInternal(w, r)
	}
}

// @Summary Create a retro
// @Description Creates a retrospective record. The session date must not be in the future; each item field is trimmed and must be 1..2048 characters; at most 20 items.
// @Tags retros
// @Accept  json
// @Produce  json
// @Param   retro  body  models.RetroPayload  true  "Retro"
// @Success 201 {object} models.Retro
// @Failure 422 {object} Problem "Validation error"
// @Failure 429 {object} Problem "Rate limited"
// @Router /retros [post]
func (h *Handlers) CreateRetro(w http.ResponseWriter, r *http.Request) {
	var payload models.RetroPayload
	if err := decodeStrict(w, r, &payload); err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	retro, err := h.Retros.CreateRetro(r.Context(), payload)
	if err != nil {
		respondRetroError(w, r, "CreateRetro", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, retro)
}

// @Summary List retros
// @Description Lists retros in creation order, optionally filtered by an inclusive session date range.
// @Tags retros
// @Produce  json
// @Param   from_date  query  string  false  "Earliest session date (YYYY-MM-DD)"
// @Param   to_date    query  string  false  "Latest session date (YYYY-MM-DD)"
// @Success 200 {array} models.Retro
// @Failure 422 {object} Problem "Invalid date"
// @Router /retros [get]
func (h *Handlers) ListRetros(w http.ResponseWriter, r *http.Request) {
	from, err := parseDateQuery(r, "from_date")
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}
	to, err := parseDateQuery(r, "to_date")
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	retros, err := h.Retros.ListRetros(r.Context(), from, to)
	if err != nil {
		respondRetroError(w, r, "ListRetros", err)
		return
	}
	respondWithJSON(w, http.StatusOK, retros)
}

// @Summary Get a retro
// @Tags retros
// @Produce  json
// @Param   id  path  int  true  "Retro ID"
// @Success 200 {object} models.Retro
// @Failure 404 {object} Problem "Retro not found"
// @Router /retros/{id} [get]
func (h *Handlers) GetRetro(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	retro, err := h.Retros.GetRetro(r.Context(), id)
	if err != nil {
		respondRetroError(w, r, "GetRetro", err)
		return
	}
	respondWithJSON(w, http.StatusOK, retro)
}

// @Summary Replace a retro
// @Tags retros
// @Accept  json
// @Produce  json
// @Param   id     path  int                  true  "Retro ID"
// @Param   retro  body  models.RetroPayload  true  "Retro"
// @Success 200 {object} models.Retro
// @Failure 404 {object} Problem "Retro not found"
// @Failure 422 {object} Problem "Validation error"
// @Router /retros/{id} [put]
func (h *Handlers) UpdateRetro(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	var payload models.RetroPayload
	if err := decodeStrict(w, r, &payload); err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	retro, err := h.Retros.UpdateRetro(r.Context(), id, payload)
	if err != nil {
		respondRetroError(w, r, "UpdateRetro", err)
		return
	}
	respondWithJSON(w, http.StatusOK, retro)
}

// @Summary Delete a retro
// @Description Deletes the record. Stored attachments are kept.
// @Tags retros
// @Param   id  path  int  true  "Retro ID"
// @Success 204 "No Content"
// @Failure 404 {object} Problem "Retro not found"
// @Router /retros/{id} [delete]
func (h *Handlers) DeleteRetro(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	if err := h.Retros.DeleteRetro(r.Context(), id); err != nil {
		respondRetroError(w, r, "DeleteRetro", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
