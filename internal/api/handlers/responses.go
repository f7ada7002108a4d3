// internal/api/handlers/responses.go
package handlers

import (
	"crypto/rand"
	"encoding/json"
	"net/http"

	"retrohub/internal/logging"

	"github.com/oklog/ulid/v2"
)

// Problem titles used across the API.
const (
	TitleValidation  = "Validation Error"
	TitleNotFound    = "not_found"
	TitleUpload      = "upload_failed"
	TitleRateLimited = "rate_limited"
	TitleInternal    = "internal_error"
	TitleBadRequest  = "bad_request"
)

// CorrelationHeader carries the request correlation id in both directions.
const CorrelationHeader = "X-Correlation-ID"

// Problem is an RFC 7807 problem details body.
type Problem struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Status        int    `json:"status"`
	Detail        string `json:"detail"`
	CorrelationID string `json:"correlation_id"`
}

// NewCorrelationID returns a fresh ULID string.
func NewCorrelationID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// RespondWithProblem sends an application/problem+json response.
func RespondWithProblem(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	id := logging.CorrelationID(r.Context())
	if id == "" {
		id = NewCorrelationID()
		w.Header().Set(CorrelationHeader, id)
	}

	body, err := json.Marshal(Problem{
		Type:          "about:blank",
		Title:         title,
		Status:        status,
		Detail:        detail,
		CorrelationID: id,
	})
	if err != nil {
		http.Error(w, `{"title":"internal_error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	w.Write(body)
}

func respondValidation(w http.ResponseWriter, r *http.Request, detail string) {
	RespondWithProblem(w, r, http.StatusUnprocessableEntity, TitleValidation, detail)
}

func respondNotFound(w http.ResponseWriter, r *http.Request, detail string) {
	RespondWithProblem(w, r, http.StatusNotFound, TitleNotFound, detail)
}

func respondInternal(w http.ResponseWriter, r *http.Request) {
	RespondWithProblem(w, r, http.StatusInternalServerError, TitleInternal, "Internal server error")
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
