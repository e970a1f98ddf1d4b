package get_session

import (
	"errors"
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

type fakeService struct{ err error }

func (f fakeService) Get(id string) (wizard.Snapshot, error) {
	return wizard.Snapshot{SessionID: id}, f.err
}

func serve(svc SessionService) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/s-1", nil)
	req = mux.SetURLVars(req, map[string]string{"sessionId": "s-1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(fakeService{})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessionId":"s-1"`)

	assert.Equal(t, http.StatusNotFound, serve(fakeService{err: sessions.ErrSessionNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(fakeService{err: errors.New("boom")}).Code)
}
