package animator

import (
	"context"

	"motionklub/internal/domain"
	"motionklub/internal/modules/catalog"
)

// Catalog is the part of the catalog service the staff screens use.
type Catalog interface {
	Now() domain.LocalTime
	Dashboard(ctx context.Context, now domain.LocalTime) (*catalog.DashboardStats, error)
	GetProgram(ctx context.Context, dateFrom, dateTo, hotelID string) (*domain.ProgramResponse, error)
	GetAnimatorRegistrations(ctx context.Context, dateFrom, dateTo string, activityID int64) (*domain.RegistrationsResponse, error)
	FindReservation(ctx context.Context, bnr string) (*domain.Reservation, error)
	GetReservationRegistrations(ctx context.Context, bnr string) ([]domain.Registration, error)
	Register(ctx context.Context, reservationRef string, selections map[int64][]string) (*catalog.BookResult, error)
	CancelRegistration(ctx context.Context, bookingID int64) (*catalog.CancelResult, error)
}
