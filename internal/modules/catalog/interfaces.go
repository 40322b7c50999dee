package catalog

import (
	"context"

	"motionklub/internal/domain"
)

type ActivityRepository interface {
	ListByHotel(ctx context.Context, hotelID string) ([]domain.Activity, error)
	FindEvent(ctx context.Context, eventID int64) (*domain.Activity, *domain.Event, error)
	GetCapacity(ctx context.Context, eventID int64) (domain.Capacity, error)
	ReserveSeats(ctx context.Context, eventID int64, n int) (bool, error)
	ReleaseSeat(ctx context.Context, eventID int64) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	FindConfirmed(ctx context.Context, id int64, bnr string) (*domain.Booking, error)
	ExistsConfirmed(ctx context.Context, bnr string, eventID int64, participantID string) (bool, error)
	MarkCancelled(ctx context.Context, id int64) (bool, error)
	ListConfirmedByBNR(ctx context.Context, bnr string) ([]domain.Booking, error)
	ListConfirmed(ctx context.Context, eventIDs []int64) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type ReservationRepository interface {
	GetByBNR(ctx context.Context, bnr string) (*domain.Reservation, error)
	HotelsByBNR(ctx context.Context) (map[string]domain.Hotel, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, hotelID string) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
}

// Transactor runs fn in one transaction; repositories must be called with
// the context fn receives.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CapacityNotifier is told about every committed counter change.
type CapacityNotifier interface {
	CapacityChanged(eventID int64, capacity domain.Capacity)
}
