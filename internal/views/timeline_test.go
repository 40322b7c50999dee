package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motionklub/internal/domain"
)

func TestPartition(t *testing.T) {
	now := domain.MustLocalTime("2025-07-03T12:00:00")
	list := []domain.BookedActivity{
		{EventID: 1, StartAt: domain.MustLocalTime("2025-07-02T10:00:00")},
		{EventID: 2, StartAt: domain.MustLocalTime("2025-07-03T12:00:00")},
		{EventID: 3, StartAt: domain.MustLocalTime("2025-07-04T10:00:00")},
		{EventID: 4, StartAt: domain.MustLocalTime("2025-07-03T11:59:59")},
	}

	upcoming, past := PartitionBookedActivities(list, now)

	assert.Equal(t, []int64{2, 3}, eventIDs(upcoming))
	assert.Equal(t, []int64{1, 4}, eventIDs(past))
}

func TestPartition_Empty(t *testing.T) {
	upcoming, past := Partition([]int{}, func(int) domain.LocalTime { return domain.LocalTime{} }, domain.LocalTime{})
	assert.NotNil(t, upcoming)
	assert.NotNil(t, past)
	assert.Empty(t, upcoming)
	assert.Empty(t, past)
}

func eventIDs(list []domain.BookedActivity) []int64 {
	out := make([]int64, 0, len(list))
	for _, a := range list {
		out = append(out, a.EventID)
	}
	return out
}
