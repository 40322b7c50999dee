package guest

import (
	"motionklub/internal/domain"
	"motionklub/internal/views"
)

// bookedByEvent maps event id to the participant ids already booked on it.
func bookedByEvent(bookings *domain.UserBookingsResponse) map[int64][]string {
	out := make(map[int64][]string)
	if bookings == nil {
		return out
	}
	for _, a := range bookings.Activities {
		for _, b := range a.Bookings {
			out[a.EventID] = append(out[a.EventID], b.Participant.ID)
		}
	}
	return out
}

// BuildProgramScreen filters the program and decorates every event with what
// the booking dialog needs.
func BuildProgramScreen(
	program *domain.ProgramResponse,
	bookings *domain.UserBookingsResponse,
	party []domain.Participant,
	filter views.ActivityFilter,
	now domain.LocalTime,
) ProgramScreen {
	booked := bookedByEvent(bookings)
	shown := views.FilterActivities(program.Activities, filter)

	screen := ProgramScreen{
		Range:      program.Range,
		Hotel:      program.Hotel,
		Categories: views.Categories(program.Activities),
		Total:      len(program.Activities),
		Shown:      len(shown),
		Activities: make([]ActivityView, 0, len(shown)),
	}
	for _, a := range shown {
		view := ActivityView{
			ActivityID:       a.ActivityID,
			Title:            a.Title,
			ShortDescription: a.ShortDescription,
			LongDescription:  a.LongDescription,
			Category:         a.Category,
			Images:           a.Images,
			Location:         a.Location,
			Events:           make([]EventView, 0, len(a.Events)),
		}
		for _, e := range a.Events {
			past := views.IsPast(e.StartAt, now)
			ids := booked[e.EventID]
			if ids == nil {
				ids = []string{}
			}
			view.Events = append(view.Events, EventView{
				Event:                e,
				CapacityStatus:       views.ClassifyCapacity(e.Capacity),
				CapacityLabel:        views.CapacityLabel(e.Capacity),
				Bookable:             views.Bookable(e.Capacity),
				Past:                 past,
				EligibleParticipants: views.EligibleParticipants(party, e.AgeProfile),
				BookedParticipantIDs: ids,
			})
		}
		screen.Activities = append(screen.Activities, view)
	}
	return screen
}

func BuildMyActivitiesScreen(bookings *domain.UserBookingsResponse, now domain.LocalTime) MyActivitiesScreen {
	upcoming, past := views.PartitionBookedActivities(bookings.Activities, now)
	return MyActivitiesScreen{
		BNR:      bookings.BNR,
		Hotel:    bookings.Hotel,
		Upcoming: upcoming,
		Past:     past,
	}
}
