package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpload(t *testing.T) {
	m := New()
	m.ObserveUpload(OutcomeSaved, 2048)
	m.ObserveUpload(OutcomeSaved, 10)
	m.ObserveUpload(OutcomeBlocked, 0)

	assert.Equal(t, 2.0, m.UploadCount(OutcomeSaved))
	assert.Equal(t, 1.0, m.UploadCount(OutcomeBlocked))
	assert.Equal(t, 0.0, m.UploadCount(OutcomeFailed))
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/retros/{id}", 404)
	m.ObserveRequest(http.MethodGet, "/retros/{id}", 404)

	assert.Equal(t, 2.0, m.RequestCount(http.MethodGet, "/retros/{id}", 404))
	assert.Equal(t, 0.0, m.RequestCount(http.MethodGet, "/retros/{id}", 200))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveUpload(OutcomeSaved, 1)
		m.ObserveRequest(http.MethodGet, "/health", 200)
	})
	assert.Equal(t, 0.0, m.UploadCount(OutcomeSaved))
	assert.Equal(t, 0.0, m.RequestCount(http.MethodGet, "/health", 200))
}

func TestHandlerExposition(t *testing.T) {
	m := New()
	m.ObserveUpload(OutcomeRejected, 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `retrohub_uploads_total{outcome="rejected"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
