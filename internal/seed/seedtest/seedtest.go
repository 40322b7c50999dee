package seedtest

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"motionklub/internal/database"
	"motionklub/internal/repository"
	"motionklub/internal/seed"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDBSeq atomic.Int64

// NewDB opens a private in-memory SQLite database, migrates it and loads
// the demo dataset.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:motionklub_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := database.Connect(dsn)
	require.NoError(t, err, "connect test database")

	ctx := context.Background()
	require.NoError(t, repository.Migrate(ctx, db), "migrate test database")
	require.NoError(t, seed.Apply(ctx, db), "seed test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
