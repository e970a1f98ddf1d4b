package wizard

import "errors"

var (
	// ErrInvalidTransition возвращается, когда операция недопустима на текущем шаге
	ErrInvalidTransition = errors.New("wizard: operation not allowed in current step")

	// ErrDateUnavailable возвращается при выборе прошедшего дня или дня соседнего месяца
	ErrDateUnavailable = errors.New("wizard: date is not selectable")

	// ErrSlotNotFound возвращается, когда слота нет в каталоге
	ErrSlotNotFound = errors.New("wizard: slot not found")

	// ErrSlotUnavailable возвращается при выборе слота без свободных мест
	ErrSlotUnavailable = errors.New("wizard: slot has no spots left")

	// ErrSubmissionFailed возвращается, когда шлюз не подтвердил бронирование
	ErrSubmissionFailed = errors.New("wizard: submission failed")
)
