package list_suites

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DaySeven-BookingService/internal/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Filters(t *testing.T) {
	cat, err := catalog.New(catalog.Default(catalog.Images{Nomad: "/images/nomad.jpg"}))
	require.NoError(t, err)
	h := NewHandler(cat, nopLogger{})

	tests := []struct {
		filter string
		ids    []string
	}{
		{filter: "", ids: []string{catalog.SuiteNomad, catalog.SuiteMinimalist, catalog.SuiteWellness, catalog.SuitePause}},
		{filter: "available", ids: []string{catalog.SuiteNomad, catalog.SuiteMinimalist, catalog.SuiteWellness, catalog.SuitePause}},
		{filter: "hourly", ids: []string{catalog.SuitePause}},
		{filter: "nightly", ids: []string{catalog.SuiteNomad, catalog.SuiteMinimalist, catalog.SuiteWellness}},
	}

	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/suites?filter="+tt.filter, nil))
			require.Equal(t, http.StatusOK, rec.Code)

			var resp SuiteListResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

			ids := make([]string, 0, len(resp.Suites))
			for _, s := range resp.Suites {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestHandle_SuiteFields(t *testing.T) {
	cat, err := catalog.New(catalog.Default(catalog.Images{Nomad: "/images/nomad.jpg"}))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(cat, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/suites?filter=nightly", nil))

	var resp SuiteListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Suites)

	nomad := resp.Suites[0]
	assert.Equal(t, "/images/nomad.jpg", nomad.Image)
	assert.Equal(t, "KSh 28,000", nomad.WeeklyRateFormatted)
	assert.Equal(t, "KSh 4,000", nomad.DailyRateFormatted)
	assert.False(t, nomad.IsHourly)
}

func TestHandle_InvalidFilter(t *testing.T) {
	cat, err := catalog.New(catalog.Default(catalog.Images{}))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(cat, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/suites?filter=cheap", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
