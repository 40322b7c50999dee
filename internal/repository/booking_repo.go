package repository

import (
	"context"
	"time"

	"motionklub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Create stores a booking. A second confirmed booking for the same
// participant and event fails with ErrDuplicate.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = r.now()
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	m := toBookingModel(b)
	if err := conn(ctx, r.db).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if err := conn(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, notFound(err)
	}
	return toDomainBooking(m), nil
}

// FindConfirmed matches a confirmed booking by id and reservation reference.
func (r *BookingRepository) FindConfirmed(ctx context.Context, id int64, bnr string) (*domain.Booking, error) {
	var m bookingModel
	err := conn(ctx, r.db).
		Where("id = ? AND bnr = ? AND status = ?", id, bnr, string(domain.BookingConfirmed)).
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) ExistsConfirmed(ctx context.Context, bnr string, eventID int64, participantID string) (bool, error) {
	var cnt int64
	err := conn(ctx, r.db).Model(&bookingModel{}).
		Where("bnr = ? AND event_id = ? AND participant_id = ? AND status = ?",
			bnr, eventID, participantID, string(domain.BookingConfirmed)).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// MarkCancelled flips a confirmed booking to cancelled. It reports false when
// the booking was not confirmed anymore.
func (r *BookingRepository) MarkCancelled(ctx context.Context, id int64) (bool, error) {
	now := r.now()
	tx := conn(ctx, r.db).Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(domain.BookingConfirmed)).
		Updates(map[string]any{
			"status":       string(domain.BookingCancelled),
			"cancelled_at": now,
			"updated_at":   now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) ListConfirmedByBNR(ctx context.Context, bnr string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := conn(ctx, r.db).
		Where("bnr = ? AND status = ?", bnr, string(domain.BookingConfirmed)).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

// ListConfirmed returns confirmed bookings, limited to eventIDs when given.
func (r *BookingRepository) ListConfirmed(ctx context.Context, eventIDs []int64) ([]domain.Booking, error) {
	var rows []bookingModel
	q := conn(ctx, r.db).Where("status = ?", string(domain.BookingConfirmed)).Order("id ASC")
	if eventIDs != nil {
		if len(eventIDs) == 0 {
			return []domain.Booking{}, nil
		}
		q = q.Where("event_id IN ?", eventIDs)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

// List returns every booking, most recently changed first.
func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var rows []bookingModel
	if err := conn(ctx, r.db).Order("updated_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
