package domain

import "time"

// Step represents a stage of the booking wizard
type Step int

const (
	Step1       Step = iota + 1 // date & time
	Step2                       // customer details
	StepSuccess                 // terminal confirmation
)

// String returns the wire name of the step
func (s Step) String() string {
	switch s {
	case Step1:
		return "date_time"
	case Step2:
		return "customer_details"
	case StepSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// MarshalText renders the step by its wire name
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Field names a form field. Values double as ErrorMap keys.
type Field string

const (
	FieldDate          Field = "date"
	FieldTime          Field = "time"
	FieldFirstName     Field = "firstName"
	FieldLastName      Field = "lastName"
	FieldPhoneNumber   Field = "phoneNumber"
	FieldEmail         Field = "email"
	FieldAddress       Field = "address"
	FieldGuestCount    Field = "guestCount"
	FieldFoodAllergies Field = "foodAllergies"
)

// ErrorMap maps a currently invalid field to a user-facing message.
// A field without a key is valid.
type ErrorMap map[Field]string

// Clone returns an independent copy of the map
func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// BookingFormData holds everything the customer entered so far
type BookingFormData struct {
	Date          string `json:"date"` // YYYY-MM-DD or empty
	Time          string `json:"time"` // slot label or empty
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	GuestCount    int    `json:"guestCount"`
	FoodAllergies string `json:"foodAllergies"`
}

// EmptyFormData returns the defaults a fresh wizard starts with
func EmptyFormData() BookingFormData {
	return BookingFormData{GuestCount: DefaultGuestCount}
}

// BookingRecord is the completed booking handed to a submission gateway
type BookingRecord struct {
	SessionID   string
	Form        BookingFormData
	SubmittedAt time.Time
}
