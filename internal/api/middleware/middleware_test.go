package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"retrohub/internal/logging"
	"retrohub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	assert.Equal(t, "192.0.2.1", ClientKey(req))

	req.Header.Set("X-Forwarded-For", " 10.0.0.9 , 172.16.0.1")
	assert.Equal(t, "10.0.0.9", ClientKey(req))

	req.Header.Set("X-Forwarded-For", ",")
	assert.Equal(t, "192.0.2.1", ClientKey(req))
}

func TestRateLimiter_Allow(t *testing.T) {
	l := NewRateLimiter(3, time.Minute)
	base := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	l.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		ok, _ := l.Allow("a")
		require.True(t, ok, "request %d", i+1)
	}
	ok, retry := l.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, 50*time.Second, retry)

	ok, _ = l.Allow("b")
	assert.True(t, ok, "other clients have their own budget")

	l.now = func() time.Time { return base.Add(time.Minute) }
	ok, _ = l.Allow("a")
	assert.True(t, ok, "next window starts fresh")
}

func TestRateLimiter_Middleware(t *testing.T) {
	l := NewRateLimiter(2, time.Minute)
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("DELETE", "/retros/999", nil)
		req.Header.Set("X-Forwarded-For", ip)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, send("127.0.0.2").Code)
	assert.Equal(t, http.StatusNoContent, send("127.0.0.2").Code)

	rr := send("127.0.0.2")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), `"title":"rate_limited"`)
	assert.Contains(t, rr.Body.String(), "Rate limit exceeded")

	assert.Equal(t, http.StatusNoContent, send("127.0.0.3").Code)
}

func TestRequestContext(t *testing.T) {
	var seenID, seenActor string
	h := RequestContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logging.CorrelationID(r.Context())
		seenActor = services.ActorFrom(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Correlation-ID", "abc-123")
	req.Header.Set("X-Forwarded-For", "198.51.100.4")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", seenID)
	assert.Equal(t, "abc-123", rr.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "198.51.100.4", seenActor)

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Len(t, seenID, 26, "generated ids are ULIDs")
	assert.Equal(t, seenID, rr.Header().Get("X-Correlation-ID"))
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://localhost"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("OPTIONS", "/retros", nil)
	req.Header.Set("Origin", "http://localhost")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest("GET", "/retros", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
