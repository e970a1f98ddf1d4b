package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRecord() domain.BookingRecord {
	return domain.BookingRecord{
		SessionID:   "s-1",
		SubmittedAt: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		Form: domain.BookingFormData{
			Date:       "2025-06-10",
			Time:       "7:30 PM",
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Email:      "ada@example.com",
			GuestCount: 12,
		},
	}
}

func TestSubmit_Delivered(t *testing.T) {
	var got BookingPayload
	var signature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))
		signature = r.Header.Get(SignatureHeader)
		assert.Equal(t, Sign(body, "secret"), signature)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", time.Second, nopLogger{})

	require.NoError(t, client.Submit(context.Background(), testRecord()))
	assert.Equal(t, "s-1", got.SessionID)
	assert.Equal(t, "2025-06-01T12:00:00Z", got.SubmittedAt)
	assert.Equal(t, 12, got.GuestCount)
	assert.NotEmpty(t, signature)
}

func TestSubmit_NoSecretNoSignature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(SignatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", time.Second, nopLogger{})

	assert.NoError(t, client.Submit(context.Background(), testRecord()))
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "rejected", status: http.StatusUnprocessableEntity, want: ErrRejected},
		{name: "server error", status: http.StatusBadGateway, want: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"code":1,"message":"nope"}`))
			}))
			defer srv.Close()

			err := NewClient(srv.URL, "", time.Second, nopLogger{}).Submit(context.Background(), testRecord())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, "", time.Second, nopLogger{}).Submit(context.Background(), testRecord())
	assert.ErrorIs(t, err, ErrUnavailable)
}
