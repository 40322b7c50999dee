package views

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionklub/internal/domain"
)

func TestGroupSlots(t *testing.T) {
	regs := sampleRegistrations()
	extra := regs[0]
	extra.BookingID = 3
	extra.Participant = domain.Participant{ID: "p3", DisplayName: "Eva Novakova", Age: 9}
	regs = append([]domain.Registration{regs[1]}, regs[0], extra)

	slots := GroupSlots(regs, domain.MustLocalTime("2025-07-03T00:00:00"))

	require.Len(t, slots, 2)
	assert.Equal(t, "2025-07-01", slots[0].Date)
	assert.Equal(t, "08:00", slots[0].StartTime)
	assert.Equal(t, "09:00", slots[0].EndTime)
	assert.True(t, slots[0].Past)
	require.Len(t, slots[0].Registrations, 2)
	assert.Equal(t, int64(1), slots[0].Registrations[0].BookingID)
	assert.Equal(t, int64(3), slots[0].Registrations[1].BookingID)
	assert.False(t, slots[1].Past)
}

func TestGroupRegistrations_ByHotel(t *testing.T) {
	regs := sampleRegistrations()
	other := regs[0]
	other.BookingID = 9
	other.Hotel = domain.Hotel{HotelID: "HER00001", Name: "Alpine Lodge"}
	regs = append(regs, other)

	groups := GroupRegistrations(regs, domain.MustLocalTime("2025-07-01T00:00:00"))

	require.Len(t, groups, 2)
	assert.Equal(t, "Alpine Lodge", groups[0].Hotel.Name)
	assert.Equal(t, 1, groups[0].Total)
	assert.Equal(t, "Hotel Aurora", groups[1].Hotel.Name)
	assert.Equal(t, 2, groups[1].Total)
	assert.Len(t, groups[1].Slots, 2)
}

func TestWriteRegistrationsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegistrationsCSV(&buf, sampleRegistrations()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "booking_id", rows[0][0])
	assert.Equal(t, []string{"1", "191754321", "Adam Novak", "45", "", "Morning Yoga", "2025-07-01", "08:00-09:00", "", "Hotel Aurora"}, rows[1])
}
