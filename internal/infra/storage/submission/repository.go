package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
	"github.com/m04kA/SMC-BookingWizard/pkg/psqlbuilder"
)

const (
	tableName          = "booking_submissions"
	uniqueViolationErr = "23505"
)

// Repository шлюз, записывающий подтвержденные бронирования в outbox-таблицу PostgreSQL.
// Дальнейшую доставку уведомлений выполняет отдельный потребитель таблицы.
type Repository struct {
	db    DBExecutor
	newID func() string
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{
		db:    db,
		newID: func() string { return uuid.NewString() },
	}
}

// Submit сохраняет бронирование. Подтверждением для мастера служит успешный INSERT.
func (r *Repository) Submit(ctx context.Context, record domain.BookingRecord) error {
	bookingDate, err := time.Parse(domain.DateFormat, record.Form.Date)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, record.Form.Date)
	}

	var allergies *string
	if record.Form.FoodAllergies != "" {
		allergies = &record.Form.FoodAllergies
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"session_id",
			"booking_date",
			"slot_label",
			"first_name",
			"last_name",
			"phone_number",
			"email",
			"address",
			"guest_count",
			"food_allergies",
			"submitted_at",
		).
		Values(
			r.newID(),
			record.SessionID,
			bookingDate,
			record.Form.Time,
			record.Form.FirstName,
			record.Form.LastName,
			record.Form.PhoneNumber,
			record.Form.Email,
			record.Form.Address,
			record.Form.GuestCount,
			allergies,
			record.SubmittedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Submit - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationErr {
			return fmt.Errorf("%w: session=%s", ErrDuplicate, record.SessionID)
		}
		return fmt.Errorf("%w: Submit - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
