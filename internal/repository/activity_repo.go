package repository

import (
	"context"
	"fmt"

	"motionklub/internal/domain"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts an activity together with its events.
func (r *ActivityRepository) Create(ctx context.Context, a domain.Activity) error {
	m := toActivityModel(a)
	return conn(ctx, r.db).Create(&m).Error
}

// ListByHotel returns activities with their events ordered by start time.
// An empty hotelID lists every hotel.
func (r *ActivityRepository) ListByHotel(ctx context.Context, hotelID string) ([]domain.Activity, error) {
	var rows []activityModel
	q := conn(ctx, r.db).
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_at ASC, id ASC")
		}).
		Order("id ASC")
	if hotelID != "" {
		q = q.Where("hotel_id = ?", hotelID)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Activity, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainActivity(m))
	}
	return out, nil
}

// FindEvent returns the event and its owning activity (without sibling events).
func (r *ActivityRepository) FindEvent(ctx context.Context, eventID int64) (*domain.Activity, *domain.Event, error) {
	var e eventModel
	if err := conn(ctx, r.db).First(&e, eventID).Error; err != nil {
		return nil, nil, notFound(err)
	}
	var a activityModel
	if err := conn(ctx, r.db).First(&a, e.ActivityID).Error; err != nil {
		return nil, nil, notFound(err)
	}
	activity := toDomainActivity(a)
	event := toDomainEvent(e)
	return &activity, &event, nil
}

func (r *ActivityRepository) GetCapacity(ctx context.Context, eventID int64) (domain.Capacity, error) {
	var e eventModel
	if err := conn(ctx, r.db).Select("id", "max_capacity", "confirmed", "available").First(&e, eventID).Error; err != nil {
		return domain.Capacity{}, notFound(err)
	}
	return domain.Capacity{Max: e.MaxCapacity, Confirmed: e.Confirmed, Available: e.Available}, nil
}

// ReserveSeats moves n seats from available to confirmed in one statement.
// It reports false, without changing anything, when fewer than n seats remain.
func (r *ActivityRepository) ReserveSeats(ctx context.Context, eventID int64, n int) (bool, error) {
	if n <= 0 {
		return false, fmt.Errorf("reserve seats: invalid count %d", n)
	}
	tx := conn(ctx, r.db).Model(&eventModel{}).
		Where("id = ? AND confirmed + ? <= max_capacity", eventID, n).
		Updates(map[string]any{
			"confirmed": gorm.Expr("confirmed + ?", n),
			"available": gorm.Expr("max_capacity - confirmed - ?", n),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// ReleaseSeat gives one seat back: confirmed floored at zero, available capped at max.
func (r *ActivityRepository) ReleaseSeat(ctx context.Context, eventID int64) error {
	tx := conn(ctx, r.db).Model(&eventModel{}).
		Where("id = ?", eventID).
		Updates(map[string]any{
			"confirmed": gorm.Expr("CASE WHEN confirmed > 0 THEN confirmed - 1 ELSE 0 END"),
			"available": gorm.Expr("CASE WHEN available + 1 > max_capacity THEN max_capacity ELSE available + 1 END"),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
