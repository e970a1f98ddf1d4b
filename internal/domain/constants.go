package domain

// Wizard defaults
const (
	DefaultGuestCount = 1
	MinGuestCount     = 1
)

// Calendar grid geometry: 6 weeks of 7 days, week starts on Sunday
const (
	GridWeeks   = 6
	DaysPerWeek = 7
	GridSize    = GridWeeks * DaysPerWeek
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultTimeSlots список слотов, если каталог не задан в конфигурации
var DefaultTimeSlots = []TimeSlot{
	{Label: "5:00 PM", SpotsLeft: 1},
	{Label: "7:30 PM", SpotsLeft: 1},
	{Label: "9:30 PM", SpotsLeft: 2},
}
