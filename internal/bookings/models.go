package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking defines the main booking structure. ClientID and
// BookedByProviderUserID are both nullable: exactly one is set, depending on
// whether the booking was placed by a client or recorded by a provider on
// behalf of a walk-in customer.
type Booking struct {
	ID                     uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ActivityID             uuid.UUID  `gorm:"type:uuid;index;not null" json:"activity_id"`
	ClientID               *uuid.UUID `gorm:"type:uuid;index" json:"client_id,omitempty"`
	BookedByProviderUserID *uuid.UUID `gorm:"type:uuid;index" json:"booked_by_provider_user_id,omitempty"`
	BookingDate            string     `gorm:"type:date;not null" json:"booking_date"`
	Slot                   string     `gorm:"type:varchar(10)" json:"slot,omitempty"`
	PartySize              int        `gorm:"not null;default:1;check:party_size > 0" json:"party_size"`
	TotalPrice             float64    `gorm:"not null" json:"total_price"`
	Status                 Status     `gorm:"type:varchar(20);check:status IN ('pending', 'confirmed', 'cancelled');default:'pending'" json:"status"`
	CancellationReason     string     `json:"cancellation_reason,omitempty"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled reports whether the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// HoldsSeats reports whether this booking currently counts against an
// availability slot. One-time activities never touch the ledger.
func (b *Booking) HoldsSeats() bool {
	return b.Slot != "" && b.Status.IsActive()
}
