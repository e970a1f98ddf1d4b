package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "нельзя")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"нельзя"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Label string `json:"label"`
	}

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"label":"5:00 PM"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "5:00 PM", dst.Label)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(req, &dst), ErrEmptyBody)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"label":"x","extra":1}`))
	assert.Error(t, DecodeJSON(req, &dst))
}
