package create_session

import "github.com/m04kA/SMC-BookingWizard/internal/wizard"

type SessionService interface {
	Create() wizard.Snapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
