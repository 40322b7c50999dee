package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRecordRepository keeps session payloads per client and key in the
// database.
type SessionRecordRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionRecordRepository(db *gorm.DB) *SessionRecordRepository {
	return &SessionRecordRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *SessionRecordRepository) Get(ctx context.Context, clientID, key string) ([]byte, error) {
	var m sessionRecordModel
	res := conn(ctx, r.db).Where("client_id = ? AND record_key = ?", clientID, key).Limit(1).Find(&m)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return []byte(m.Payload), nil
}

func (r *SessionRecordRepository) Put(ctx context.Context, clientID, key string, payload []byte) error {
	m := sessionRecordModel{
		ClientID:  clientID,
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: r.now(),
	}
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&m).Error
}

func (r *SessionRecordRepository) Delete(ctx context.Context, clientID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return conn(ctx, r.db).
		Where("client_id = ? AND record_key IN ?", clientID, keys).
		Delete(&sessionRecordModel{}).Error
}

// DeleteStale removes records not written since before.
func (r *SessionRecordRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	tx := conn(ctx, r.db).Where("updated_at < ?", before.UTC()).Delete(&sessionRecordModel{})
	return tx.RowsAffected, tx.Error
}
