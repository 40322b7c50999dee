package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates every table used by the service.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	models := []any{
		&hotelModel{},
		&activityModel{},
		&eventModel{},
		&reservationModel{},
		&participantModel{},
		&bookingModel{},
		&animatorModel{},
		&sessionRecordModel{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
	}

	// One confirmed booking per participant and event.
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_confirmed_participant
		ON bookings (bnr, event_id, participant_id) WHERE status = 'confirmed'`).Error; err != nil {
		return fmt.Errorf("create booking index: %w", err)
	}
	return nil
}

// ResetSequences advances PostgreSQL identity sequences past rows inserted
// with explicit ids (seed data). SQLite needs nothing.
func ResetSequences(ctx context.Context, db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return db.WithContext(ctx).Exec(
		`SELECT setval(pg_get_serial_sequence('bookings', 'id'), COALESCE((SELECT MAX(id) FROM bookings), 1))`,
	).Error
}
