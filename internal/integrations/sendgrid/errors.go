package sendgrid

import "errors"

var (
	// ErrSendFailed возвращается, когда письмо не удалось отправить
	ErrSendFailed = errors.New("sendgrid gateway: send failed")

	// ErrRender возвращается при ошибке сборки письма
	ErrRender = errors.New("sendgrid gateway: failed to render email")
)
