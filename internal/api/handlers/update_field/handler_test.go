package update_field

import (
	"net/http"
	"net/http/httptest"
	"strings"
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
	update wizard.FieldUpdate
	err    error
}

func (f *fakeService) Update(_ string, update wizard.FieldUpdate) (wizard.Snapshot, error) {
	f.update = update
	return wizard.Snapshot{}, f.err
}

func serve(svc SessionService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/sessions/s-1/fields", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"sessionId": "s-1"})
	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, `{"field":"guestCount","value":40}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, wizard.GuestCount(40), svc.update)
}

func TestHandle_BadRequests(t *testing.T) {
	for _, body := range []string{
		``,
		`{"field":"nickname","value":"x"}`,
		`{"field":"guestCount","value":"many"}`,
		`{"field":"guestCount","value":null}`,
		`{"field":"email","value":"a@b.c","extra":true}`,
	} {
		svc := &fakeService{}
		rec := serve(svc, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Nil(t, svc.update)
	}
}

func TestHandle_ServiceErrors(t *testing.T) {
	rec := serve(&fakeService{err: sessions.ErrSessionNotFound}, `{"field":"email","value":"a@b.c"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeService{err: wizard.ErrInvalidTransition}, `{"field":"email","value":"a@b.c"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
