package select_date

import (
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

type SessionService interface {
	SelectDate(id string, day domain.CalendarDay) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
