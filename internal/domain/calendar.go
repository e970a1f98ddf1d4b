package domain

import "time"

// MonthRef identifies a calendar page. Month is 0-based (January = 0).
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthOf returns the page containing t
func MonthOf(t time.Time) MonthRef {
	return MonthRef{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Next returns the following month, rolling December over into January of the next year
func (m MonthRef) Next() MonthRef {
	if m.Month == 11 {
		return MonthRef{Year: m.Year + 1, Month: 0}
	}
	return MonthRef{Year: m.Year, Month: m.Month + 1}
}

// Previous returns the preceding month, rolling January back into December of the previous year
func (m MonthRef) Previous() MonthRef {
	if m.Month == 0 {
		return MonthRef{Year: m.Year - 1, Month: 11}
	}
	return MonthRef{Year: m.Year, Month: m.Month - 1}
}

// CalendarDay is one cell of the month grid, possibly belonging to an adjacent month
type CalendarDay struct {
	Day            int  `json:"day"`
	Month          int  `json:"month"` // 0-based
	Year           int  `json:"year"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
}

// Date returns midnight of the cell's day in loc
func (d CalendarDay) Date(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, loc)
}

// ISODate formats the cell as YYYY-MM-DD
func (d CalendarDay) ISODate() string {
	return d.Date(time.UTC).Format(DateFormat)
}
