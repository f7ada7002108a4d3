// filepath: internal/api/handlers/item_handler.go
package handlers

import (
	"errors"
	"net/http"

	"retrohub/internal/logging"
	"retrohub/internal/services"
)

// @Summary Create a demo item
// @Tags items
// @Produce  json
// @Param   name  query  string  true  "Item name (1..100 chars)"
// @Success 200 {object} models.Item
// @Failure 422 {object} Problem "Invalid name"
// @Router /items [post]
func (h *Handlers) CreateItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Items.CreateItem(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondValidation(w, r, services.DetailOf(err, err.Error()))
			return
		}
		logging.Log.Errorf("CreateItem: Unhandled error from ItemService: %v", err)
		respondInternal(w, r)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// @Summary Get a demo item
// @Tags items
// @Produce  json
// @Param   id  path  int  true  "Item ID"
// @Success 200 {object} models.Item
// @Failure 404 {object} Problem "Item not found"
// @Router /items/{id} [get]
func (h *Handlers) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respondValidation(w, r, err.Error())
		return
	}

	item, err := h.Items.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondNotFound(w, r, services.DetailOf(err, "item not found"))
			return
		}
		logging.Log.Errorf("GetItem: Unhandled error from ItemService: %v", err)
		respondInternal(w, r)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}
