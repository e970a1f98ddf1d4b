package domain

// TimeSlot represents a bookable time of day with its remaining capacity
type TimeSlot struct {
	Label     string `json:"label"`
	SpotsLeft int    `json:"spotsLeft"`
}

// IsFull returns true if the slot has no spots left and must not be selected
func (s *TimeSlot) IsFull() bool {
	return s.SpotsLeft <= 0
}
