package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"medisafe-companion/internal/platform/logger"
)

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestRequestLogger(t *testing.T) {
	log, logs := newObserved()

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLogger(log))
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) { http.Error(w, "not found", http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "/ok", first["path"])
	assert.EqualValues(t, http.StatusOK, first["status"])
	assert.NotEmpty(t, first["request_id"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.EqualValues(t, http.StatusNotFound, entries[1].ContextMap()["status"])
}

func TestRecover(t *testing.T) {
	log, logs := newObserved()

	r := chi.NewRouter()
	r.Use(Recover(log))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	assert.Equal(t, "kaboom", logs.All()[0].ContextMap()["panic"])
}
