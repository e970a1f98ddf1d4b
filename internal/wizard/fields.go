package wizard

import "github.com/m04kA/SMC-BookingWizard/internal/domain"

// FieldUpdate типизированное изменение одного поля формы.
// Набор вариантов закрыт: реализации есть только в этом пакете.
type FieldUpdate interface {
	Field() domain.Field
	apply(form *domain.BookingFormData)
}

type (
	FirstName     string
	LastName      string
	PhoneNumber   string
	Email         string
	Address       string
	FoodAllergies string
	GuestCount    int
)

func (v FirstName) Field() domain.Field     { return domain.FieldFirstName }
func (v LastName) Field() domain.Field      { return domain.FieldLastName }
func (v PhoneNumber) Field() domain.Field   { return domain.FieldPhoneNumber }
func (v Email) Field() domain.Field         { return domain.FieldEmail }
func (v Address) Field() domain.Field       { return domain.FieldAddress }
func (v FoodAllergies) Field() domain.Field { return domain.FieldFoodAllergies }
func (v GuestCount) Field() domain.Field    { return domain.FieldGuestCount }

func (v FirstName) apply(f *domain.BookingFormData)     { f.FirstName = string(v) }
func (v LastName) apply(f *domain.BookingFormData)      { f.LastName = string(v) }
func (v PhoneNumber) apply(f *domain.BookingFormData)   { f.PhoneNumber = string(v) }
func (v Email) apply(f *domain.BookingFormData)         { f.Email = string(v) }
func (v Address) apply(f *domain.BookingFormData)       { f.Address = string(v) }
func (v FoodAllergies) apply(f *domain.BookingFormData) { f.FoodAllergies = string(v) }
func (v GuestCount) apply(f *domain.BookingFormData)    { f.GuestCount = int(v) }
