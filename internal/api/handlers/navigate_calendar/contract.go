package navigate_calendar

import "github.com/m04kA/SMC-BookingWizard/internal/wizard"

type SessionService interface {
	PreviousMonth(id string) (wizard.Snapshot, error)
	NextMonth(id string) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
