package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client шлюз отправки бронирования во внешний сервис уведомлений по HTTP
type Client struct {
	url        string
	secret     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url, secret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Submit отправляет бронирование; успехом считается только ответ 2xx
func (c *Client) Submit(ctx context.Context, record domain.BookingRecord) error {
	body, err := json.Marshal(FromRecord(record))
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set(SignatureHeader, Sign(body, c.secret))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Webhook: session=%s request failed: %v", record.SessionID, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.log.Info("Webhook: session=%s delivered, status=%d", record.SessionID, resp.StatusCode)
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.log.Warn("Webhook: session=%s rejected, status=%d: %s", record.SessionID, resp.StatusCode, errResp.Message)
		return fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, errResp.Message)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("Webhook: session=%s unexpected status=%d", record.SessionID, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	}
}

// Sign возвращает base64(HMAC-SHA256(body)) для заголовка подписи
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
