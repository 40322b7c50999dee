package catalog

import "errors"

var (
	ErrInvalidRange        = errors.New("invalid date range")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrMissingReservation  = errors.New("reservation reference is required")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrInvalidParticipant  = errors.New("invalid participant")
	ErrNoParticipants      = errors.New("no participants selected")
	ErrAgeIneligible       = errors.New("participant age not eligible")
	ErrDuplicateBooking    = errors.New("participant already booked")
	ErrCapacityExceeded    = errors.New("not enough places left")
	ErrBookingNotFound     = errors.New("booking not found")
)
