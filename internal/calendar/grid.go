package calendar

import (
	"time"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// DaysInMonth возвращает количество дней в месяце (month 0-based).
// Нулевой день следующего месяца есть последний день текущего.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday возвращает день недели первого числа месяца (0 = воскресенье)
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Grid строит страницу календаря из 42 ячеек (6 недель по 7 дней, неделя начинается с воскресенья):
// хвост предыдущего месяца, все дни текущего и начало следующего
func Grid(ref domain.MonthRef) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0, domain.GridSize)

	// 1. Дни предыдущего месяца до первого числа
	lead := FirstWeekday(ref.Year, ref.Month)
	if lead > 0 {
		prev := ref.Previous()
		prevDays := DaysInMonth(prev.Year, prev.Month)
		for i := lead - 1; i >= 0; i-- {
			days = append(days, domain.CalendarDay{
				Day:   prevDays - i,
				Month: prev.Month,
				Year:  prev.Year,
			})
		}
	}

	// 2. Дни текущего месяца
	for d := 1; d <= DaysInMonth(ref.Year, ref.Month); d++ {
		days = append(days, domain.CalendarDay{
			Day:            d,
			Month:          ref.Month,
			Year:           ref.Year,
			IsCurrentMonth: true,
		})
	}

	// 3. Добиваем сетку днями следующего месяца
	next := ref.Next()
	for d := 1; len(days) < domain.GridSize; d++ {
		days = append(days, domain.CalendarDay{
			Day:   d,
			Month: next.Month,
			Year:  next.Year,
		})
	}

	return days
}

// Title возвращает заголовок страницы календаря, например "June 2025"
func Title(ref domain.MonthRef) string {
	return time.Date(ref.Year, time.Month(ref.Month+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
