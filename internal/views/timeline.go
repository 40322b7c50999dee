package views

import "motionklub/internal/domain"

// IsPast reports whether t lies strictly before now.
func IsPast(t domain.LocalTime, now domain.LocalTime) bool {
	return t.Before(now.Time)
}

// Partition splits items into upcoming and past by the timestamp at returns.
// Order inside each part is preserved.
func Partition[T any](items []T, at func(T) domain.LocalTime, now domain.LocalTime) (upcoming, past []T) {
	upcoming = make([]T, 0, len(items))
	past = make([]T, 0)
	for _, it := range items {
		if IsPast(at(it), now) {
			past = append(past, it)
		} else {
			upcoming = append(upcoming, it)
		}
	}
	return upcoming, past
}

// PartitionBookedActivities is the guest "my activities" split by start time.
func PartitionBookedActivities(list []domain.BookedActivity, now domain.LocalTime) (upcoming, past []domain.BookedActivity) {
	return Partition(list, func(a domain.BookedActivity) domain.LocalTime { return a.StartAt }, now)
}
