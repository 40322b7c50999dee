package guest

import (
	"context"

	"motionklub/internal/domain"
)

// Catalog is the part of the catalog service the guest screens read.
type Catalog interface {
	Now() domain.LocalTime
	GetProgram(ctx context.Context, dateFrom, dateTo, hotelID string) (*domain.ProgramResponse, error)
	GetUserBookings(ctx context.Context, reservationRef string) (*domain.UserBookingsResponse, error)
}
