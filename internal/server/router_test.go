package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookingproto/rategen/internal/domain"
	"github.com/bookingproto/rategen/internal/export"
)

func testSnapshot() export.Snapshot {
	return export.Snapshot{
		RunID:       "run-42",
		HorizonFrom: "2024-06-01",
		HorizonTo:   "2024-06-30",
		Rooms:       []domain.Room{{ID: "std", Name: "Standard", TotalRooms: 10}},
		Rates: []export.Rate{
			{RoomTypeID: "std", From: "2024-06-01", To: "2024-06-06", Price: 3000},
			{RoomTypeID: "lux", From: "2024-06-01", To: "2024-06-06", Price: 7000},
		},
		BlackoutDates: []string{"2024-06-05"},
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := NewRouter(testSnapshot(), "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "run-42")
}

func TestRouter_Rates(t *testing.T) {
	router := NewRouter(testSnapshot(), "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rates", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rates []export.Rate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rates))
	require.Len(t, rates, 2)
}

func TestRouter_RatesFilteredByRoom(t *testing.T) {
	router := NewRouter(testSnapshot(), "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rates?room_type_id=lux", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rates []export.Rate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rates))
	require.Len(t, rates, 1)
	require.Equal(t, "lux", rates[0].RoomTypeID)
}

func TestRouter_Blackouts(t *testing.T) {
	router := NewRouter(testSnapshot(), "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blackouts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `["2024-06-05"]`, w.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	router := NewRouter(testSnapshot(), "")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "rategen_rate_ranges_loaded")
}
