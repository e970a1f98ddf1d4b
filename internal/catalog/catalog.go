package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Catalog неизменяемый список предлагаемых временных слотов.
// Выбор слота не уменьшает SpotsLeft: учёт вместимости вне ядра мастера.
type Catalog struct {
	slots []domain.TimeSlot
}

// New создает каталог, проверяя метки и вместимость
func New(slots []domain.TimeSlot) (*Catalog, error) {
	seen := make(map[string]struct{}, len(slots))
	out := make([]domain.TimeSlot, 0, len(slots))

	for _, s := range slots {
		label := strings.TrimSpace(s.Label)
		if label == "" {
			return nil, fmt.Errorf("%w: empty label", ErrInvalidSlot)
		}
		if s.SpotsLeft < 0 {
			return nil, fmt.Errorf("%w: negative spots for %q", ErrInvalidSlot, label)
		}
		if _, ok := seen[label]; ok {
			return nil, fmt.Errorf("%w: duplicate label %q", ErrInvalidSlot, label)
		}
		seen[label] = struct{}{}
		out = append(out, domain.TimeSlot{Label: label, SpotsLeft: s.SpotsLeft})
	}

	return &Catalog{slots: out}, nil
}

// Default возвращает каталог со стандартным набором слотов
func Default() *Catalog {
	c, _ := New(domain.DefaultTimeSlots)
	return c
}

// SlotsFor возвращает копию слотов для выбранной даты.
// Набор фиксирован и не зависит от даты.
func (c *Catalog) SlotsFor(date string) []domain.TimeSlot {
	out := make([]domain.TimeSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

// Find ищет слот по метке
func (c *Catalog) Find(label string) (domain.TimeSlot, error) {
	for _, s := range c.slots {
		if s.Label == label {
			return s, nil
		}
	}
	return domain.TimeSlot{}, fmt.Errorf("%w: %q", ErrSlotNotFound, label)
}
