package update_field

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
)

var (
	errUnknownField = errors.New("unknown field")
	errInvalidValue = errors.New("invalid field value")
)

// UpdateFieldRequest изменение одного поля формы клиента
type UpdateFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// ToFieldUpdate конвертирует запрос в типизированное изменение.
// Дата и время меняются только через выбор в календаре и списке слотов.
func (r *UpdateFieldRequest) ToFieldUpdate() (wizard.FieldUpdate, error) {
	if len(r.Value) == 0 || bytes.Equal(bytes.TrimSpace(r.Value), []byte("null")) {
		return nil, fmt.Errorf("%w: %s has no value", errInvalidValue, r.Field)
	}

	switch domain.Field(r.Field) {
	case domain.FieldGuestCount:
		var n int
		if err := json.Unmarshal(r.Value, &n); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errInvalidValue, r.Field, err)
		}
		return wizard.GuestCount(n), nil

	case domain.FieldFirstName, domain.FieldLastName, domain.FieldPhoneNumber,
		domain.FieldEmail, domain.FieldAddress, domain.FieldFoodAllergies:
		var s string
		if err := json.Unmarshal(r.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errInvalidValue, r.Field, err)
		}
		return textUpdate(domain.Field(r.Field), s), nil

	default:
		return nil, fmt.Errorf("%w: %q", errUnknownField, r.Field)
	}
}

func textUpdate(field domain.Field, value string) wizard.FieldUpdate {
	switch field {
	case domain.FieldFirstName:
		return wizard.FirstName(value)
	case domain.FieldLastName:
		return wizard.LastName(value)
	case domain.FieldPhoneNumber:
		return wizard.PhoneNumber(value)
	case domain.FieldEmail:
		return wizard.Email(value)
	case domain.FieldAddress:
		return wizard.Address(value)
	default:
		return wizard.FoodAllergies(value)
	}
}
