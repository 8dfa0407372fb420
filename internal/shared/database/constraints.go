package database

import (
	"strings"

	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// One ledger row per activity/date/slot; the reservation transaction
	// depends on locking exactly one row.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_activity_date_slot
		ON availability_slots (activity_id, date, slot);
	`).Error
	if err != nil {
		return err
	}

	// Seat counters must never go negative, even if application-level
	// checks are bypassed.
	err = db.Exec(`
		ALTER TABLE availability_slots
		ADD CONSTRAINT seats_remaining_non_negative
		CHECK (seats_remaining >= 0) NOT VALID;
	`).Error
	if err != nil {
		// Constraint already exists on re-run; ignore.
		if !isDuplicateConstraint(err) {
			return err
		}
	}

	// Index for booking history lookups by party
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_client_created
		ON bookings (client_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_provider_created
		ON bookings (booked_by_provider_user_id, created_at DESC);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

func isDuplicateConstraint(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
