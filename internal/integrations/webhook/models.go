package webhook

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// SignatureHeader заголовок с base64(HMAC-SHA256(body)), если задан секрет
const SignatureHeader = "X-Booking-Signature"

// BookingPayload тело запроса к получателю уведомлений
type BookingPayload struct {
	SessionID     string `json:"sessionId"`
	SubmittedAt   string `json:"submittedAt"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	GuestCount    int    `json:"guestCount"`
	FoodAllergies string `json:"foodAllergies,omitempty"`
}

// ErrorResponse модель ошибки от получателя
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FromRecord конвертирует бронирование в тело запроса
func FromRecord(record domain.BookingRecord) BookingPayload {
	f := record.Form
	return BookingPayload{
		SessionID:     record.SessionID,
		SubmittedAt:   record.SubmittedAt.UTC().Format(time.RFC3339),
		Date:          f.Date,
		Time:          f.Time,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		PhoneNumber:   f.PhoneNumber,
		Email:         f.Email,
		Address:       f.Address,
		GuestCount:    f.GuestCount,
		FoodAllergies: f.FoodAllergies,
	}
}
