package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          int64         `json:"booking_id"`
	BNR         string        `json:"bnr"`
	EventID     int64         `json:"event_id"`
	Participant Participant   `json:"participant"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`
}

// BookingRef is the per-participant entry nested under a booked activity.
type BookingRef struct {
	BookingID   int64       `json:"booking_id"`
	Participant Participant `json:"participant"`
}

type BookedActivity struct {
	EventID  int64        `json:"event_id"`
	Title    string       `json:"title"`
	StartAt  LocalTime    `json:"start_at"`
	EndAt    LocalTime    `json:"end_at"`
	Location Location     `json:"location"`
	Bookings []BookingRef `json:"bookings"`
}

type UserBookingsResponse struct {
	BNR        string           `json:"bnr"`
	Hotel      Hotel            `json:"hotel"`
	Activities []BookedActivity `json:"activities"`
}

// Registration is a confirmed booking joined with its event, activity and hotel.
type Registration struct {
	BookingID     int64         `json:"booking_id"`
	BNR           string        `json:"bnr"`
	Participant   Participant   `json:"participant"`
	ActivityID    int64         `json:"activity_id"`
	ActivityTitle string        `json:"activity_title"`
	EventID       int64         `json:"event_id"`
	StartAt       LocalTime     `json:"start_at"`
	EndAt         LocalTime     `json:"end_at"`
	Location      Location      `json:"location"`
	Hotel         Hotel         `json:"hotel"`
	Status        BookingStatus `json:"status"`
}

type RegistrationsResponse struct {
	Range         DateRange      `json:"range"`
	Registrations []Registration `json:"registrations"`
}
