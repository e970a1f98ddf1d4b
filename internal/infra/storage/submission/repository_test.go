package submission

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

type fakeExecutor struct {
	query string
	args  []interface{}
	err   error
}

func (f *fakeExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.query = query
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return driverResult(1), nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func testRecord() domain.BookingRecord {
	return domain.BookingRecord{
		SessionID:   "s-1",
		SubmittedAt: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		Form: domain.BookingFormData{
			Date:        "2025-06-10",
			Time:        "7:30 PM",
			FirstName:   "Ada",
			LastName:    "Lovelace",
			PhoneNumber: "+1 555 0100",
			Email:       "ada@example.com",
			Address:     "1 Main St",
			GuestCount:  12,
		},
	}
}

func TestSubmit_BuildsInsert(t *testing.T) {
	exec := &fakeExecutor{}
	repo := NewRepository(exec)
	repo.newID = func() string { return "00000000-0000-0000-0000-000000000001" }

	require.NoError(t, repo.Submit(context.Background(), testRecord()))

	assert.Equal(t,
		"INSERT INTO booking_submissions (id,session_id,booking_date,slot_label,first_name,last_name,phone_number,email,address,guest_count,food_allergies,submitted_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)",
		exec.query)
	require.Len(t, exec.args, 12)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", exec.args[0])
	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), exec.args[2])
	assert.Equal(t, 12, exec.args[9])
	assert.Nil(t, exec.args[10], "empty allergies are stored as NULL")
}

func TestSubmit_Errors(t *testing.T) {
	record := testRecord()
	record.Form.Date = "10/06/2025"
	assert.ErrorIs(t, NewRepository(&fakeExecutor{}).Submit(context.Background(), record), ErrInvalidDate)

	dup := &fakeExecutor{err: &pq.Error{Code: "23505"}}
	assert.ErrorIs(t, NewRepository(dup).Submit(context.Background(), testRecord()), ErrDuplicate)

	broken := &fakeExecutor{err: errors.New("connection reset")}
	assert.ErrorIs(t, NewRepository(broken).Submit(context.Background(), testRecord()), ErrExecQuery)
}
