package database

import (
	"adventura/internal/activities"
	"adventura/internal/availability"
	"adventura/internal/bookings"
	"adventura/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&users.Client{},
		&users.Provider{},
		&activities.Activity{},
		&availability.AvailabilitySlot{},
		&bookings.Booking{},
	)
}
