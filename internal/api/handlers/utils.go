// filepath: internal/api/handlers/utils.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"retrohub/internal/models"

	"github.com/gorilla/mux"
)

// maxJSONBody bounds create and update bodies. 20 items of three 2048
// character fields fit comfortably.
const maxJSONBody = 1 << 20

// parseID reads the {id} route variable.
func parseID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id: Input should be a valid integer, unable to parse string as an integer")
	}
	return id, nil
}

// decodeStrict decodes exactly one JSON object and rejects unknown fields.
func decodeStrict(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return fmt.Errorf("body: request body too large")
		case errors.Is(err, io.EOF):
			return fmt.Errorf("body: field required")
		default:
			return fmt.Errorf("body: %v", err)
		}
	}
	if dec.More() {
		return fmt.Errorf("body: unexpected data after JSON object")
	}
	return nil
}

// parseDateQuery reads an optional YYYY-MM-DD query parameter.
func parseDateQuery(r *http.Request, name string) (*models.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return &d, nil
}
