package submission

import "errors"

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrDuplicate возвращается при повторной записи того же бронирования
	ErrDuplicate = errors.New("submission.repository: submission already exists")

	// ErrInvalidDate возвращается, если дата бронирования не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("submission.repository: invalid booking date")
)
