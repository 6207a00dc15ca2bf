package viastatus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railtools/viastatus/config"
	"github.com/railtools/viastatus/reservia"
)

type fakeSource struct {
	rows  []reservia.StationRow
	err   error
	calls int
}

func (f *fakeSource) TrainStatus(ctx context.Context, train int, date string) ([]reservia.StationRow, error) {
	f.calls++
	return f.rows, f.err
}

func liveRows() []reservia.StationRow {
	return []reservia.StationRow{
		{Name: "TORONTO", Departure: reservia.TimeStrings{Scheduled: "19:05", Actual: "19:05"}},
		{Name: "OAKVILLE",
			Arrival:   reservia.TimeStrings{Scheduled: "19:26", Actual: "19:31"},
			Departure: reservia.TimeStrings{Scheduled: "19:28", Actual: "19:33"}},
		{Name: "WINDSOR", Arrival: reservia.TimeStrings{Scheduled: "23:10", Estimated: "23:16"}},
	}
}

func testServer(src *fakeSource) *Server {
	cfg := config.AppConfig{}
	cfg.Server.CacheCapacity = 16
	cfg.Server.CacheTTLSec = 60
	return NewServer(cfg, src)
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, testServer(&fakeSource{rows: liveRows()}), "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestTripEndpointJSON(t *testing.T) {
	rec := get(t, testServer(&fakeSource{rows: liveRows()}), "/api/trips/79?date=2014-03-22")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 79, body["train"])
	assert.Equal(t, "2014-03-22", body["date"])
	assert.Len(t, body["stations"], 3)
	require.NotNil(t, body["status"])
	status := body["status"].(map[string]any)
	assert.Equal(t, true, status["late"])
}

func TestTripEndpointText(t *testing.T) {
	rec := get(t, testServer(&fakeSource{rows: liveRows()}), "/api/trips/79?date=2014-03-22&format=text")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, rec.Body.String(), "Train #79")
	assert.Contains(t, rec.Body.String(), "Station")
}

func TestTripEndpointBadRequests(t *testing.T) {
	s := testServer(&fakeSource{rows: liveRows()})
	cases := []struct {
		name string
		url  string
	}{
		{"non-numeric train", "/api/trips/abc"},
		{"negative train", "/api/trips/-5"},
		{"bad date", "/api/trips/79?date=22-03-2014"},
		{"bad format", "/api/trips/79?date=2014-03-22&format=xml"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, s, tc.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTripEndpointNotFound(t *testing.T) {
	rec := get(t, testServer(&fakeSource{err: reservia.ErrTripNotFound}), "/api/trips/9999?date=2014-03-22")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
}

func TestTripEndpointCaches(t *testing.T) {
	src := &fakeSource{rows: liveRows()}
	s := testServer(src)

	require.Equal(t, http.StatusOK, get(t, s, "/api/trips/79?date=2014-03-22").Code)
	require.Equal(t, http.StatusOK, get(t, s, "/api/trips/79?date=2014-03-22").Code)
	assert.Equal(t, 1, src.calls)

	require.Equal(t, http.StatusOK, get(t, s, "/api/trips/79?date=2014-03-23").Code)
	assert.Equal(t, 2, src.calls, "a different date is a different cache key")
}

func TestTripEndpointIncompleteDegradesToScheduleOnly(t *testing.T) {
	src := &fakeSource{rows: liveRows(), err: reservia.ErrTripIncomplete}
	rec := get(t, testServer(src), "/api/trips/79?date=2014-03-22")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["stations"], 3)
	_, hasStatus := body["status"]
	assert.False(t, hasStatus, "schedule-only snapshots omit the status block")
}

func TestMetricsEndpoint(t *testing.T) {
	s := testServer(&fakeSource{rows: liveRows()})
	require.Equal(t, http.StatusOK, get(t, s, "/api/trips/79?date=2014-03-22").Code)

	rec := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "viastatus_upstream_fetches_total")
}
