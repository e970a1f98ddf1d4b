package select_date

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingWizard/internal/calendar"
	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

var errInvalidDay = errors.New("invalid calendar day")

// SelectDateRequest день календаря; month 0-based.
// Принадлежность видимой странице определяет мастер.
type SelectDateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// ToCalendarDay проверяет, что дата существует, и конвертирует запрос в ячейку календаря
func (r *SelectDateRequest) ToCalendarDay() (domain.CalendarDay, error) {
	if r.Month < 0 || r.Month > 11 {
		return domain.CalendarDay{}, fmt.Errorf("%w: month %d", errInvalidDay, r.Month)
	}
	if r.Day < 1 || r.Day > calendar.DaysInMonth(r.Year, r.Month) {
		return domain.CalendarDay{}, fmt.Errorf("%w: day %d", errInvalidDay, r.Day)
	}

	return domain.CalendarDay{
		Day:   r.Day,
		Month: r.Month,
		Year:  r.Year,
	}, nil
}
