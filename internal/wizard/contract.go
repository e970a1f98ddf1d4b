package wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// SubmissionGateway принимает заполненное и проверенное бронирование
type SubmissionGateway interface {
	Submit(ctx context.Context, record domain.BookingRecord) error
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	SlotsFor(date string) []domain.TimeSlot
	Find(label string) (domain.TimeSlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// ZonedTimeProvider текущее время в часовом поясе заведения: от него зависит, какой день "сегодня"
type ZonedTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в Location
func (p *ZonedTimeProvider) Now() time.Time {
	return time.Now().In(p.Location)
}
