package animator

import (
	"sort"

	"motionklub/internal/domain"
	"motionklub/internal/views"
)

func BuildRegistrationsScreen(
	res *domain.RegistrationsResponse,
	activities []domain.Activity,
	query string,
	now domain.LocalTime,
) RegistrationsScreen {
	shown := views.FilterRegistrations(res.Registrations, views.RegistrationFilter{Query: query})

	options := make([]ActivityOption, 0, len(activities))
	for _, a := range activities {
		options = append(options, ActivityOption{ActivityID: a.ActivityID, Title: a.Title})
	}

	return RegistrationsScreen{
		Range:      res.Range,
		Total:      len(res.Registrations),
		Shown:      len(shown),
		Groups:     views.GroupRegistrations(shown, now),
		Activities: options,
	}
}

// BuildReservationScreen lists every event of the program with per-person
// eligibility for the add-registration dialog, ordered by start time.
func BuildReservationScreen(
	res *domain.Reservation,
	program *domain.ProgramResponse,
	registrations []domain.Registration,
	now domain.LocalTime,
) ReservationScreen {
	booked := make(map[int64]map[string]bool)
	for _, r := range registrations {
		if booked[r.EventID] == nil {
			booked[r.EventID] = make(map[string]bool)
		}
		booked[r.EventID][r.Participant.ID] = true
	}

	events := make([]ReservationEvent, 0)
	for _, a := range program.Activities {
		for _, e := range a.Events {
			opts := make([]ParticipantOption, 0, len(res.Participants))
			for _, p := range res.Participants {
				opts = append(opts, ParticipantOption{
					Participant: p,
					Eligible:    views.Eligible(p, e.AgeProfile),
					Booked:      booked[e.EventID][p.ID],
				})
			}
			events = append(events, ReservationEvent{
				ActivityID:     a.ActivityID,
				ActivityTitle:  a.Title,
				Category:       a.Category,
				Location:       a.Location,
				Event:          e,
				CapacityStatus: views.ClassifyCapacity(e.Capacity),
				Past:           views.IsPast(e.StartAt, now),
				Participants:   opts,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Event.StartAt.Before(events[j].Event.StartAt.Time)
	})

	return ReservationScreen{Reservation: res, Events: events}
}

func BuildReservationRegistrationsScreen(bnr string, regs []domain.Registration, now domain.LocalTime) ReservationRegistrationsScreen {
	return ReservationRegistrationsScreen{
		BNR:   bnr,
		Total: len(regs),
		Slots: views.GroupSlots(regs, now),
	}
}
