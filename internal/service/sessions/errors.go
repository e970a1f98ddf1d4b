package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, если сессия не существует или уже удалена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSchedule возвращается при некорректном cron-выражении очистки
	ErrInvalidSchedule = errors.New("invalid sweep schedule")
)
