package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/expenses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Different path parameters must collapse into one label value.
	for _, path := range []string{"/expenses/1", "/expenses/2", "/expenses/31337"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/expenses/{id}", "200"))
	assert.Equal(t, 3.0, got)

	for _, raw := range []string{"/expenses/1", "/expenses/2", "/expenses/31337"} {
		assert.Equal(t, 0.0, testutil.ToFloat64(requestsTotal.WithLabelValues("GET", raw, "200")))
	}
}

func TestMiddlewareRecordsStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/missing/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing/9", nil))

	got := testutil.ToFloat64(requestsTotal.WithLabelValues("GET", "/missing/{id}", "404"))
	assert.Equal(t, 1.0, got)
}
