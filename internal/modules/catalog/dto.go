package catalog

import (
	"time"

	"motionklub/internal/domain"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

type BookResult struct {
	Status     string  `json:"status"`
	BookingIDs []int64 `json:"booking_ids"`
}

type CancelResult struct {
	Status string `json:"status"`
}

// RecentChange is a booking as it appears in the dashboard activity feed.
type RecentChange struct {
	domain.Registration
	ChangedAt domain.LocalTime `json:"changed_at"`
}

type DashboardStats struct {
	TotalConfirmed     int            `json:"total_confirmed"`
	UpcomingActivities int            `json:"upcoming_activities"`
	UpcomingEvents     int            `json:"upcoming_events"`
	RegistrationsToday int            `json:"registrations_today"`
	CancellationsToday int            `json:"cancellations_today"`
	RecentChanges      []RecentChange `json:"recent_changes"`
}

// Options tune a Service. Zero values are usable.
type Options struct {
	// Latency is a simulated delay before every operation.
	Latency  time.Duration
	Location *time.Location
	Notifier CapacityNotifier
	Clock    func() time.Time
}

// BookRequest is the guest booking payload.
type BookRequest struct {
	EventID        int64    `json:"event_id" binding:"required"`
	ParticipantIDs []string `json:"participant_ids" binding:"required,min=1,dive,required"`
}

type CancelRequest struct {
	EventID       int64  `json:"event_id"`
	ParticipantID string `json:"participant_id"`
}

type ProgramQuery struct {
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
}
