package database

import (
	"log"

	"github.com/hotelhub/booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Hotel{}, &models.Room{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Exclusion constraint: no two active bookings for the same room may have
	// overlapping [check_in, check_out) ranges. The per-room row lock in the
	// service is the primary serialization; this backstops it at the storage
	// boundary. check_in/check_out migrate as timestamptz, hence tstzrange.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		log.Fatalf("failed to create btree_gist extension: %v", err)
	}
	if err := db.Exec(`
		DO $$ BEGIN
			ALTER TABLE bookings
			ADD CONSTRAINT bookings_no_active_overlap
			EXCLUDE USING gist (
				room_id WITH =,
				tstzrange(check_in, check_out) WITH &&
			) WHERE (status IN ('pending', 'confirmed'));
		EXCEPTION
			WHEN duplicate_object THEN NULL;
			WHEN duplicate_table THEN NULL;
		END $$;
	`).Error; err != nil {
		log.Fatalf("failed to create booking overlap constraint: %v", err)
	}

	return db
}
