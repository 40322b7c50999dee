// Package views turns catalog query results into display-ready shapes. All
// functions are pure: they never touch storage and never mutate their input.
package views

import (
	"fmt"

	"motionklub/internal/domain"
)

type CapacityStatus string

const (
	CapacityFull      CapacityStatus = "full"
	CapacityLimited   CapacityStatus = "limited"
	CapacityAvailable CapacityStatus = "available"
)

const (
	fullPercent    = 90
	limitedPercent = 70
)

// ClassifyCapacity buckets an event by its confirmed/max ratio. Lower bounds
// are inclusive; an event without seats counts as full.
func ClassifyCapacity(c domain.Capacity) CapacityStatus {
	if c.Max <= 0 {
		return CapacityFull
	}
	switch {
	case c.Confirmed*100 >= fullPercent*c.Max:
		return CapacityFull
	case c.Confirmed*100 >= limitedPercent*c.Max:
		return CapacityLimited
	default:
		return CapacityAvailable
	}
}

// Bookable reports whether at least one seat is left.
func Bookable(c domain.Capacity) bool {
	return c.Available > 0
}

func CapacityLabel(c domain.Capacity) string {
	switch ClassifyCapacity(c) {
	case CapacityFull:
		return "Fully booked"
	case CapacityLimited:
		return fmt.Sprintf("Only %d places left", c.Available)
	default:
		return fmt.Sprintf("%d places available", c.Available)
	}
}

// Eligible reports whether the participant's age fits the event.
func Eligible(p domain.Participant, profile domain.AgeProfile) bool {
	return profile.Allows(p.Age)
}

// EligibleParticipants keeps the party members allowed to join the event,
// preserving their order.
func EligibleParticipants(party []domain.Participant, profile domain.AgeProfile) []domain.Participant {
	out := make([]domain.Participant, 0, len(party))
	for _, p := range party {
		if Eligible(p, profile) {
			out = append(out, p)
		}
	}
	return out
}
