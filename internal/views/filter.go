package views

import (
	"strings"
	"time"

	"motionklub/internal/domain"
)

// ActivityFilter narrows the program screen. Zero values match everything.
type ActivityFilter struct {
	Query    string
	Category string
	From     time.Time
	To       time.Time
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// FilterActivities applies the free-text, category and date predicates.
// With a date range set, events outside it are dropped and activities left
// without events disappear.
func FilterActivities(activities []domain.Activity, f ActivityFilter) []domain.Activity {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	dated := !f.From.IsZero() || !f.To.IsZero()

	out := make([]domain.Activity, 0, len(activities))
	for _, a := range activities {
		if q != "" && !containsFold(a.Title, q) && !containsFold(a.ShortDescription, q) {
			continue
		}
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if dated {
			events := make([]domain.Event, 0, len(a.Events))
			for _, e := range a.Events {
				if domain.InDayRange(e.StartAt, f.From, f.To) {
					events = append(events, e)
				}
			}
			if len(events) == 0 {
				continue
			}
			a.Events = events
		}
		out = append(out, a)
	}
	return out
}

// Categories lists the distinct activity categories in first-seen order.
func Categories(activities []domain.Activity) []string {
	seen := make(map[string]bool, len(activities))
	out := make([]string, 0)
	for _, a := range activities {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}

// RegistrationFilter narrows the animator registration overview.
type RegistrationFilter struct {
	Query      string
	ActivityID int64
	From       time.Time
	To         time.Time
}

// FilterRegistrations matches the query against participant name, BNR,
// activity title and hotel name, case-insensitively, and ANDs the rest.
func FilterRegistrations(regs []domain.Registration, f RegistrationFilter) []domain.Registration {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Registration, 0, len(regs))
	for _, r := range regs {
		if q != "" &&
			!containsFold(r.Participant.DisplayName, q) &&
			!containsFold(r.BNR, q) &&
			!containsFold(r.ActivityTitle, q) &&
			!containsFold(r.Hotel.Name, q) {
			continue
		}
		if f.ActivityID != 0 && r.ActivityID != f.ActivityID {
			continue
		}
		if !domain.InDayRange(r.StartAt, f.From, f.To) {
			continue
		}
		out = append(out, r)
	}
	return out
}
