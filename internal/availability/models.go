package availability

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilitySlot is the per (activity, date, slot) seat counter for
// recurring activities. SeatsRemaining is mutated only inside the reservation
// service's transaction; this package never exposes a raw "set seats" write.
type AvailabilitySlot struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ActivityID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_activity_date_slot,priority:1" json:"activity_id"`
	Date           string    `gorm:"type:date;not null;uniqueIndex:idx_activity_date_slot,priority:2" json:"date"`
	Slot           string    `gorm:"size:20;not null;uniqueIndex:idx_activity_date_slot,priority:3" json:"slot"`
	SeatsRemaining int       `gorm:"not null;check:seats_remaining >= 0" json:"seats_remaining"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}

// SlotInfo is the read-model returned by availability queries.
type SlotInfo struct {
	Slot           string `json:"slot"`
	SeatsRemaining int    `json:"seats_remaining"`
}
