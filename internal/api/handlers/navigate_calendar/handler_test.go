package navigate_calendar

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BookingWizard/internal/service/sessions"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	called string
	err    error
}

func (f *fakeService) PreviousMonth(string) (wizard.Snapshot, error) {
	f.called = DirectionPrevious
	return wizard.Snapshot{}, f.err
}

func (f *fakeService) NextMonth(string) (wizard.Snapshot, error) {
	f.called = DirectionNext
	return wizard.Snapshot{}, f.err
}

func serve(svc SessionService, direction string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s-1/calendar/"+direction, nil)
	req = mux.SetURLVars(req, map[string]string{"sessionId": "s-1", "direction": direction})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	for _, direction := range []string{DirectionPrevious, DirectionNext} {
		svc := &fakeService{}
		assert.Equal(t, http.StatusOK, serve(svc, direction).Code)
		assert.Equal(t, direction, svc.called)
	}

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "sideways").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: sessions.ErrSessionNotFound}, DirectionNext).Code)
}
