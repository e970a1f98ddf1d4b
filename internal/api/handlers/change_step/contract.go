package change_step

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

type SessionService interface {
	Next(id string) (wizard.Snapshot, error)
	Back(id string) (wizard.Snapshot, error)
	Submit(ctx context.Context, id string) (wizard.Snapshot, error)
	Reset(id string) (wizard.Snapshot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
