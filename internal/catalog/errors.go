package catalog

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слота с такой меткой нет в каталоге
	ErrSlotNotFound = errors.New("catalog: slot not found")

	// ErrInvalidSlot возвращается при некорректной записи каталога
	ErrInvalidSlot = errors.New("catalog: invalid slot")
)
