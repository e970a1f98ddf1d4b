package wizard

import (
	"github.com/m04kA/SMC-BookingWizard/internal/calendar"
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// State внутреннее состояние мастера; единственный источник правды для отображения
type State struct {
	Step            domain.Step
	FormData        domain.BookingFormData
	Errors          domain.ErrorMap
	VisibleMonth    domain.MonthRef
	SubmissionError string
}

// Snapshot копия состояния для слоя отображения, только для чтения
type Snapshot struct {
	SessionID       string                 `json:"sessionId"`
	Step            domain.Step            `json:"step"`
	FormData        domain.BookingFormData `json:"formData"`
	Errors          domain.ErrorMap        `json:"errors"`
	SubmissionError string                 `json:"submissionError,omitempty"`
	VisibleMonth    domain.MonthRef        `json:"visibleMonth"`
	MonthTitle      string                 `json:"monthTitle"`
	Calendar        []calendar.Cell        `json:"calendar"`
	Slots           []domain.TimeSlot      `json:"slots"`
}

// MsgSubmissionFailed сообщение для пользователя при отказе шлюза
const MsgSubmissionFailed = "We could not submit your booking. Please try again."
