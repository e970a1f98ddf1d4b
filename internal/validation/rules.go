package validation

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

// Сообщения для пользователя
const (
	MsgDateRequired      = "Please select a date"
	MsgTimeRequired      = "Please select a time"
	MsgFirstNameRequired = "First name is required"
	MsgLastNameRequired  = "Last name is required"
	MsgPhoneRequired     = "Phone number is required"
	MsgEmailRequired     = "Email is required"
	MsgEmailInvalid      = "Email address is invalid"
	MsgAddressRequired   = "Address is required"
	MsgGuestCountMin     = "Guest count must be at least 1"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Validate вычисляет карту ошибок для шага целиком.
// Пустая карта означает, что шаг валиден.
func Validate(step domain.Step, form domain.BookingFormData) domain.ErrorMap {
	errs := domain.ErrorMap{}

	switch step {
	case domain.Step1:
		validateDateTime(form, errs)
	case domain.Step2:
		validateCustomer(form, errs)
	}

	return errs
}

func validateDateTime(form domain.BookingFormData, errs domain.ErrorMap) {
	if form.Date == "" {
		errs[domain.FieldDate] = MsgDateRequired
	}
	if form.Time == "" {
		errs[domain.FieldTime] = MsgTimeRequired
	}
}

func validateCustomer(form domain.BookingFormData, errs domain.ErrorMap) {
	required(errs, domain.FieldFirstName, form.FirstName, MsgFirstNameRequired)
	required(errs, domain.FieldLastName, form.LastName, MsgLastNameRequired)
	required(errs, domain.FieldPhoneNumber, form.PhoneNumber, MsgPhoneRequired)

	switch {
	case isBlank(form.Email):
		errs[domain.FieldEmail] = MsgEmailRequired
	case !emailPattern.MatchString(form.Email):
		errs[domain.FieldEmail] = MsgEmailInvalid
	}

	required(errs, domain.FieldAddress, form.Address, MsgAddressRequired)

	if form.GuestCount < domain.MinGuestCount {
		errs[domain.FieldGuestCount] = MsgGuestCountMin
	}
}

func required(errs domain.ErrorMap, field domain.Field, value, msg string) {
	if isBlank(value) {
		errs[field] = msg
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
