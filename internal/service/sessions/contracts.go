package sessions

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс сборщика метрик мастера
type Metrics interface {
	ObserveOperation(operation, outcome string)
	ObserveSubmission(outcome string)
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dependencies внешние зависимости, которые сервис передает каждому мастеру
type Dependencies struct {
	Catalog      wizard.SlotCatalog
	Gateway      wizard.SubmissionGateway
	TimeProvider TimeProvider
	Metrics      Metrics
	Logger       Logger
}

type nopMetrics struct{}

func (nopMetrics) ObserveOperation(string, string) {}
func (nopMetrics) ObserveSubmission(string)        {}
func (nopMetrics) SetActiveSessions(int)           {}
