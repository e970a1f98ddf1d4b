package webhook

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("webhook client: internal error")

	// ErrRejected возвращается, когда получатель отклонил бронирование (4xx)
	ErrRejected = errors.New("webhook client: booking rejected")

	// ErrUnavailable возвращается при недоступности получателя (сеть, 5xx)
	ErrUnavailable = errors.New("webhook client: receiver unavailable")
)
