package views

import (
	"sort"

	"motionklub/internal/domain"
)

// SlotGroup collects registrations for one activity session.
type SlotGroup struct {
	ActivityID    int64                 `json:"activity_id"`
	ActivityTitle string                `json:"activity_title"`
	EventID       int64                 `json:"event_id"`
	Date          string                `json:"date"`
	StartTime     string                `json:"start_time"`
	EndTime       string                `json:"end_time"`
	Location      domain.Location       `json:"location"`
	Past          bool                  `json:"past"`
	Registrations []domain.Registration `json:"registrations"`
}

type HotelGroup struct {
	Hotel domain.Hotel `json:"hotel"`
	Slots []SlotGroup  `json:"slots"`
	Total int          `json:"total"`
}

type slotKey struct {
	activity string
	date     string
	start    string
}

// GroupSlots groups registrations by (activity, date, start time), ordered by
// date, start time and activity title. Registrations keep their input order.
func GroupSlots(regs []domain.Registration, now domain.LocalTime) []SlotGroup {
	index := make(map[slotKey]int)
	groups := make([]SlotGroup, 0)
	for _, r := range regs {
		k := slotKey{activity: r.ActivityTitle, date: r.StartAt.Day(), start: r.StartAt.Clock()}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, SlotGroup{
				ActivityID:    r.ActivityID,
				ActivityTitle: r.ActivityTitle,
				EventID:       r.EventID,
				Date:          k.date,
				StartTime:     k.start,
				EndTime:       r.EndAt.Clock(),
				Location:      r.Location,
				Past:          IsPast(r.StartAt, now),
			})
		}
		groups[i].Registrations = append(groups[i].Registrations, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ActivityTitle < b.ActivityTitle
	})
	return groups
}

// GroupRegistrations groups first by hotel (ordered by name), then by slot.
func GroupRegistrations(regs []domain.Registration, now domain.LocalTime) []HotelGroup {
	byHotel := make(map[string][]domain.Registration)
	hotels := make(map[string]domain.Hotel)
	for _, r := range regs {
		byHotel[r.Hotel.HotelID] = append(byHotel[r.Hotel.HotelID], r)
		hotels[r.Hotel.HotelID] = r.Hotel
	}

	out := make([]HotelGroup, 0, len(byHotel))
	for id, list := range byHotel {
		out = append(out, HotelGroup{
			Hotel: hotels[id],
			Slots: GroupSlots(list, now),
			Total: len(list),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hotel.Name != out[j].Hotel.Name {
			return out[i].Hotel.Name < out[j].Hotel.Name
		}
		return out[i].Hotel.HotelID < out[j].Hotel.HotelID
	})
	return out
}
