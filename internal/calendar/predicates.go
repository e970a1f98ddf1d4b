package calendar

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Cell ячейка календаря с производными флагами для отображения
type Cell struct {
	domain.CalendarDay
	IsToday    bool `json:"isToday"`
	IsPast     bool `json:"isPast"`
	IsSelected bool `json:"isSelected"`
	Disabled   bool `json:"disabled"`
}

// IsToday проверяет, что ячейка совпадает с текущей датой
func IsToday(day domain.CalendarDay, now time.Time) bool {
	y, m, d := now.Date()
	return day.Year == y && day.Month == int(m)-1 && day.Day == d
}

// IsPastDate проверяет, что день ячейки строго раньше сегодняшнего.
// Время суток игнорируется с обеих сторон.
func IsPastDate(day domain.CalendarDay, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.Date(now.Location()).Before(today)
}

// ParseDay разбирает дату YYYY-MM-DD в ячейку календаря
func ParseDay(iso string) (domain.CalendarDay, error) {
	date, err := time.Parse(domain.DateFormat, iso)
	if err != nil {
		return domain.CalendarDay{}, err
	}
	return domain.CalendarDay{Day: date.Day(), Month: int(date.Month()) - 1, Year: date.Year()}, nil
}

// IsSelectedDate проверяет, что ячейка совпадает с выбранной датой (YYYY-MM-DD).
// Пустая или некорректная дата не выбирает ни одной ячейки.
func IsSelectedDate(day domain.CalendarDay, selected string) bool {
	if selected == "" {
		return false
	}
	sel, err := ParseDay(selected)
	if err != nil {
		return false
	}
	return day.Year == sel.Year && day.Month == sel.Month && day.Day == sel.Day
}

// IsSelectable возвращает true, если день можно выбрать: не в прошлом и принадлежит текущей странице
func IsSelectable(day domain.CalendarDay, now time.Time) bool {
	return day.IsCurrentMonth && !IsPastDate(day, now)
}

// Annotate дополняет ячейки сетки флагами для слоя отображения
func Annotate(days []domain.CalendarDay, now time.Time, selected string) []Cell {
	cells := make([]Cell, len(days))
	for i, day := range days {
		past := IsPastDate(day, now)
		cells[i] = Cell{
			CalendarDay: day,
			IsToday:     IsToday(day, now),
			IsPast:      past,
			IsSelected:  IsSelectedDate(day, selected),
			Disabled:    past || !day.IsCurrentMonth,
		}
	}
	return cells
}
