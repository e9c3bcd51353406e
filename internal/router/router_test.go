package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idsegen/internal/handler"
	"idsegen/internal/router"
	"idsegen/internal/service"
	"idsegen/internal/validator"
)

type nopWriter struct{}

func (nopWriter) WriteFile(context.Context, string, []string) error { return nil }

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	processor := service.NewProcessor(validator.NewBatchValidator(0, 0), nopWriter{}, zerolog.Nop())
	return router.Setup(
		handler.NewBatchHandler(processor, zerolog.Nop()),
		handler.NewHealthHandler("test"),
	)
}

func TestHealthRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	testEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestRutaDesconocida(t *testing.T) {
	rec := httptest.NewRecorder()
	testEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nada", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRutaDeProcesoRegistrada(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/batches/process", nil)
	testEngine().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty body is a malformed batch, not an unknown route")
}
