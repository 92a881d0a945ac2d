package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without touching a server, so the generated
// SQL can be inspected.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// The row locks are what serialize concurrent bookings per room and
// concurrent transitions per booking, so the generated SQL must actually
// carry the locking clause.
func TestFindByIDForUpdate_EmitsRowLock(t *testing.T) {
	db := newDryRunDB(t)

	var queries []string
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("capture_sql", func(d *gorm.DB) {
		queries = append(queries, d.Statement.SQL.String())
	}))

	roomRepo := NewRoomRepository(db)
	_, _ = roomRepo.FindByIDForUpdate(context.Background(), db, 1, 1)

	bookingRepo := NewBookingRepository(db)
	_, _ = bookingRepo.FindByIDForUpdate(context.Background(), db, 1)

	require.Len(t, queries, 2)
	for _, q := range queries {
		assert.Contains(t, q, "FOR UPDATE")
	}
	assert.Contains(t, queries[0], "hotel_id")
}
