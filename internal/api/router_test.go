package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/catalog"
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
	"github.com/m04kA/SMC-BookingWizard/pkg/metrics"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordingGateway struct{ records []domain.BookingRecord }

func (g *recordingGateway) Submit(_ context.Context, record domain.BookingRecord) error {
	g.records = append(g.records, record)
	return nil
}

type snapshotBody struct {
	SessionID string            `json:"sessionId"`
	Step      string            `json:"step"`
	Errors    map[string]string `json:"errors"`
	FormData  struct {
		Date       string `json:"date"`
		Time       string `json:"time"`
		GuestCount int    `json:"guestCount"`
	} `json:"formData"`
	MonthTitle string `json:"monthTitle"`
}

func newTestRouter(t *testing.T) (http.Handler, *recordingGateway) {
	t.Helper()
	log := logger.NewNop()
	gw := &recordingGateway{}
	m := metrics.New("booking_wizard_test")

	svc := sessions.NewService(sessions.Dependencies{
		Catalog:      catalog.Default(),
		Gateway:      gw,
		TimeProvider: fixedClock{now: time.Date(2025, time.June, 1, 15, 30, 0, 0, time.UTC)},
		Metrics:      m,
		Logger:       log,
	}, 30*time.Minute, time.Second)

	router := NewRouter(svc, m, Config{
		MetricsPath:     "/metrics",
		AllowedOrigins:  []string{"https://booking.example.com"},
		SubmitPerSecond: 1,
		SubmitBurst:     5,
	}, log)
	return router, gw
}

func call(t *testing.T, h http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, snapshotBody) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	var snap snapshotBody
	if rec.Code < 300 && rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	}
	return rec, snap
}

func TestRouter_BookingFlow(t *testing.T) {
	h, gw := newTestRouter(t)

	rec, snap := call(t, h, http.MethodPost, "/api/v1/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, snap.SessionID)
	base := "/api/v1/sessions/" + snap.SessionID

	rec, snap = call(t, h, http.MethodPost, base+"/steps/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "date_time", snap.Step)
	assert.Equal(t, "Please select a date", snap.Errors["date"])

	rec, _ = call(t, h, http.MethodPut, base+"/date", map[string]interface{}{"year": 2025, "month": 4, "day": 31})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, snap = call(t, h, http.MethodPut, base+"/date", map[string]interface{}{"year": 2025, "month": 5, "day": 10})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-06-10", snap.FormData.Date)

	rec, _ = call(t, h, http.MethodPut, base+"/date", map[string]interface{}{"year": 2025, "month": 6, "day": 15})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "July is not the visible page")

	rec, snap = call(t, h, http.MethodPut, base+"/time", map[string]string{"label": "9:30 PM"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "9:30 PM", snap.FormData.Time)

	rec, snap = call(t, h, http.MethodPost, base+"/calendar/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "July 2025", snap.MonthTitle)

	rec, snap = call(t, h, http.MethodPost, base+"/steps/next", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "customer_details", snap.Step)

	for field, value := range map[string]interface{}{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"phoneNumber": "+1 555 0100",
		"email":       "ada@example.com",
		"address":     "1 Main St",
		"guestCount":  30,
	} {
		rec, _ = call(t, h, http.MethodPatch, base+"/fields", map[string]interface{}{"field": field, "value": value})
		require.Equal(t, http.StatusOK, rec.Code, field)
	}

	rec, snap = call(t, h, http.MethodPost, base+"/steps/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", snap.Step)
	require.Len(t, gw.records, 1)
	assert.Equal(t, 30, gw.records[0].Form.GuestCount)

	rec, _ = call(t, h, http.MethodPost, base+"/steps/back", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, snap = call(t, h, http.MethodPost, base+"/steps/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "date_time", snap.Step)
	assert.Equal(t, 1, snap.FormData.GuestCount)

	rec, _ = call(t, h, http.MethodDelete, base, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = call(t, h, http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	h, _ := newTestRouter(t)
	call(t, h, http.MethodPost, "/api/v1/sessions", nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `booking_wizard_test_http_requests_total{method="POST",route="/api/v1/sessions",status="201"} 1`)
	assert.Contains(t, rec.Body.String(), "booking_wizard_test_active_sessions 1")
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	req.Header.Set("Origin", "https://booking.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://booking.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
