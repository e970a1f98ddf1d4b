// Package logsink шлюз, который только журналирует бронирование и всегда подтверждает его.
// Используется для локальной разработки без внешних сервисов.
package logsink

import (
	"context"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

type Gateway struct {
	log Logger
}

func NewGateway(log Logger) *Gateway {
	return &Gateway{log: log}
}

// Submit журналирует бронирование. Отмененный контекст считается отказом.
func (g *Gateway) Submit(ctx context.Context, record domain.BookingRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f := record.Form
	g.log.Info("LogSink: session=%s booking date=%s time=%s guests=%d name=%q %q email=%s phone=%s",
		record.SessionID, f.Date, f.Time, f.GuestCount, f.FirstName, f.LastName, f.Email, f.PhoneNumber)
	return nil
}
