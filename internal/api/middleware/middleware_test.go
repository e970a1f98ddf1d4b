package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type observed struct {
	method, route, status string
}

type fakeMetrics struct{ calls []observed }

func (f *fakeMetrics) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	f.calls = append(f.calls, observed{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/sessions/{sessionId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/sessions/abc", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{http.MethodGet, "/sessions/{sessionId}", "418"}, m.calls[0])
}

func TestRateLimiter_PerSession(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	r := mux.NewRouter()
	r.Handle("/sessions/{sessionId}/steps/submit",
		limiter.Middleware(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))

	hit := func(id string) int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sessions/"+id+"/steps/submit", nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("a"))
	assert.Equal(t, http.StatusOK, hit("a"))
	assert.Equal(t, http.StatusTooManyRequests, hit("a"))
	assert.Equal(t, http.StatusOK, hit("b"), "other sessions have their own budget")

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusOK, hit("a"))
}

func TestRateLimiter_Prune(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.allow("old")
	now = now.Add(limiterIdleTTL + time.Second)
	limiter.prune(now)

	assert.NotContains(t, limiter.limiters, "old")
}
