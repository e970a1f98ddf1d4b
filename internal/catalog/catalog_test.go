package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BookingWizard/internal/domain"
)

func TestNew_RejectsBadEntries(t *testing.T) {
	tests := []struct {
		name  string
		slots []domain.TimeSlot
	}{
		{name: "empty label", slots: []domain.TimeSlot{{Label: "  ", SpotsLeft: 1}}},
		{name: "negative spots", slots: []domain.TimeSlot{{Label: "5:00 PM", SpotsLeft: -1}}},
		{name: "duplicate", slots: []domain.TimeSlot{{Label: "5:00 PM", SpotsLeft: 1}, {Label: "5:00 PM ", SpotsLeft: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.slots)
			assert.ErrorIs(t, err, ErrInvalidSlot)
		})
	}
}

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, domain.DefaultTimeSlots, c.SlotsFor("2025-06-10"))
}

func TestSlotsFor_ReturnsCopy(t *testing.T) {
	c := Default()

	slots := c.SlotsFor("")
	slots[0].SpotsLeft = 99

	assert.Equal(t, 1, c.SlotsFor("")[0].SpotsLeft)
}

func TestFind(t *testing.T) {
	c, err := New([]domain.TimeSlot{{Label: "7:30 PM", SpotsLeft: 0}})
	require.NoError(t, err)

	slot, err := c.Find("7:30 PM")
	require.NoError(t, err)
	assert.True(t, slot.IsFull())

	_, err = c.Find("8:00 PM")
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
