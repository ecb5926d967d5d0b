package get_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DaySeven-BookingService/internal/api/handlers"
	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	cat, err := catalog.New(catalog.Default(catalog.Images{Pause: "/images/pause.jpg"}))
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/suites/{suiteId}", NewHandler(cat, nopLogger{}).Handle).Methods(http.MethodGet)
	return r
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/suites/pause", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.SuiteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, catalog.SuitePause, resp.ID)
	assert.True(t, resp.IsHourly)
	assert.Equal(t, "/images/pause.jpg", resp.Image)
	assert.NotEmpty(t, resp.Highlights)
}

func TestHandle_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/suites/penthouse", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, msgNotFound, resp.Message)
}
