package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionklub/internal/domain"
)

func sampleActivities() []domain.Activity {
	return []domain.Activity{
		{
			ActivityID: 1, Title: "Morning Yoga", ShortDescription: "Stretch by the pool", Category: "Wellness",
			Events: []domain.Event{
				{EventID: 10, StartAt: domain.MustLocalTime("2025-07-01T08:00:00")},
				{EventID: 11, StartAt: domain.MustLocalTime("2025-07-03T08:00:00")},
			},
		},
		{
			ActivityID: 2, Title: "Beach Volleyball", ShortDescription: "Team sport", Category: "Sport",
			Events: []domain.Event{
				{EventID: 20, StartAt: domain.MustLocalTime("2025-07-05T16:00:00")},
			},
		},
		{
			ActivityID: 3, Title: "Kids Club", ShortDescription: "Games and yoga for kids", Category: "Kids",
			Events: []domain.Event{
				{EventID: 30, StartAt: domain.MustLocalTime("2025-07-01T10:00:00")},
			},
		},
	}
}

func TestFilterActivities_Query(t *testing.T) {
	got := FilterActivities(sampleActivities(), ActivityFilter{Query: "  YOGA "})
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ActivityID)
	assert.Equal(t, int64(3), got[1].ActivityID)
}

func TestFilterActivities_Category(t *testing.T) {
	got := FilterActivities(sampleActivities(), ActivityFilter{Category: "Sport"})
	require.Len(t, got, 1)
	assert.Equal(t, "Beach Volleyball", got[0].Title)
}

func TestFilterActivities_DateRangeTrimsEvents(t *testing.T) {
	acts := sampleActivities()
	day := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	got := FilterActivities(acts, ActivityFilter{From: day, To: day})

	require.Len(t, got, 2)
	assert.Len(t, got[0].Events, 1)
	assert.Equal(t, int64(10), got[0].Events[0].EventID)
	assert.Len(t, acts[0].Events, 2, "input must not be mutated")
}

func TestFilterActivities_NoFilter(t *testing.T) {
	assert.Len(t, FilterActivities(sampleActivities(), ActivityFilter{}), 3)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Wellness", "Sport", "Kids"}, Categories(sampleActivities()))
}

func sampleRegistrations() []domain.Registration {
	aurora := domain.Hotel{HotelID: "HER90079", Name: "Hotel Aurora"}
	return []domain.Registration{
		{
			BookingID: 1, BNR: "191754321", ActivityID: 1, ActivityTitle: "Morning Yoga", EventID: 10,
			Participant: domain.Participant{ID: "p1", DisplayName: "Adam Novak", Age: 45},
			StartAt:     domain.MustLocalTime("2025-07-01T08:00:00"),
			EndAt:       domain.MustLocalTime("2025-07-01T09:00:00"),
			Hotel:       aurora,
		},
		{
			BookingID: 2, BNR: "191754322", ActivityID: 2, ActivityTitle: "Beach Volleyball", EventID: 20,
			Participant: domain.Participant{ID: "p1", DisplayName: "Marie Svobodova", Age: 32},
			StartAt:     domain.MustLocalTime("2025-07-05T16:00:00"),
			EndAt:       domain.MustLocalTime("2025-07-05T17:00:00"),
			Hotel:       aurora,
		},
	}
}

func TestFilterRegistrations(t *testing.T) {
	regs := sampleRegistrations()

	assert.Len(t, FilterRegistrations(regs, RegistrationFilter{Query: "marie"}), 1)
	assert.Len(t, FilterRegistrations(regs, RegistrationFilter{Query: "1917543"}), 2)
	assert.Len(t, FilterRegistrations(regs, RegistrationFilter{Query: "aurora"}), 2)
	assert.Len(t, FilterRegistrations(regs, RegistrationFilter{Query: "volley", ActivityID: 1}), 0)

	from := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	got := FilterRegistrations(regs, RegistrationFilter{From: from})
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].BookingID)
}
