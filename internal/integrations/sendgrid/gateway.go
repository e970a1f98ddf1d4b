package sendgrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Sender интерфейс клиента SendGrid
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config параметры отправителя
type Config struct {
	FromEmail   string
	FromName    string
	NotifyEmail string // скрытая копия менеджеру, опционально
}

// Gateway шлюз, подтверждающий бронирование письмом клиенту
type Gateway struct {
	sender Sender
	cfg    Config
	log    Logger
}

// NewGateway создает шлюз поверх официального клиента SendGrid
func NewGateway(apiKey string, cfg Config, log Logger) *Gateway {
	return NewGatewayWithSender(sg.NewSendClient(apiKey), cfg, log)
}

// NewGatewayWithSender создает шлюз с произвольным отправителем
func NewGatewayWithSender(sender Sender, cfg Config, log Logger) *Gateway {
	return &Gateway{sender: sender, cfg: cfg, log: log}
}

// Submit отправляет письмо; успехом считается только ответ 2xx
func (g *Gateway) Submit(ctx context.Context, record domain.BookingRecord) error {
	subject, plain, html, err := render(record)
	if err != nil {
		return err
	}

	from := mail.NewEmail(g.cfg.FromName, g.cfg.FromEmail)
	toName := strings.TrimSpace(record.Form.FirstName + " " + record.Form.LastName)
	to := mail.NewEmail(toName, record.Form.Email)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	if g.cfg.NotifyEmail != "" && len(message.Personalizations) > 0 {
		message.Personalizations[0].AddBCCs(mail.NewEmail(g.cfg.FromName, g.cfg.NotifyEmail))
	}

	response, err := g.sender.SendWithContext(ctx, message)
	if err != nil {
		g.log.Error("SendGrid: session=%s send failed: %v", record.SessionID, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		g.log.Error("SendGrid: session=%s status=%d body=%s", record.SessionID, response.StatusCode, response.Body)
		return fmt.Errorf("%w: status %d: %s", ErrSendFailed, response.StatusCode, response.Body)
	}

	g.log.Info("SendGrid: session=%s confirmation sent, status=%d", record.SessionID, response.StatusCode)
	return nil
}
