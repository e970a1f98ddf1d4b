package sendgrid

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSender struct {
	resp *rest.Response
	err  error
	sent []*mail.SGMailV3
}

func (s *fakeSender) SendWithContext(_ context.Context, email *mail.SGMailV3) (*rest.Response, error) {
	s.sent = append(s.sent, email)
	return s.resp, s.err
}

func testRecord() domain.BookingRecord {
	return domain.BookingRecord{
		SessionID: "s-1",
		Form: domain.BookingFormData{
			Date:          "2025-06-10",
			Time:          "7:30 PM",
			FirstName:     "Ada",
			LastName:      "Lovelace",
			Email:         "ada@example.com",
			Address:       "1 Main St",
			GuestCount:    12,
			FoodAllergies: "shellfish",
		},
	}
}

func TestSubmit_Accepted(t *testing.T) {
	sender := &fakeSender{resp: &rest.Response{StatusCode: 202}}
	gw := NewGatewayWithSender(sender, Config{FromEmail: "bookings@example.com", FromName: "Hibachi", NotifyEmail: "manager@example.com"}, nopLogger{})

	require.NoError(t, gw.Submit(context.Background(), testRecord()))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "Your booking request for Tuesday, June 10, 2025 at 7:30 PM", msg.Subject)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "ada@example.com", msg.Personalizations[0].To[0].Address)
	assert.Equal(t, "Ada Lovelace", msg.Personalizations[0].To[0].Name)
	require.Len(t, msg.Personalizations[0].BCC, 1)
	assert.Equal(t, "manager@example.com", msg.Personalizations[0].BCC[0].Address)

	require.Len(t, msg.Content, 2)
	assert.Contains(t, msg.Content[1].Value, "Food allergies: shellfish")
}

func TestSubmit_Failures(t *testing.T) {
	tests := []struct {
		name   string
		sender *fakeSender
	}{
		{name: "transport error", sender: &fakeSender{err: errors.New("dial tcp: timeout")}},
		{name: "non-2xx", sender: &fakeSender{resp: &rest.Response{StatusCode: 401, Body: "unauthorized"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := NewGatewayWithSender(tt.sender, Config{FromEmail: "bookings@example.com"}, nopLogger{})
			assert.ErrorIs(t, gw.Submit(context.Background(), testRecord()), ErrSendFailed)
		})
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Tuesday, June 10, 2025", displayDate("2025-06-10"))
	assert.Equal(t, "garbage", displayDate("garbage"))
}
