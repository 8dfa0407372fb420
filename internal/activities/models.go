package activities

import (
	"time"

	"github.com/google/uuid"
)

type ListingKind string

const (
	ListingOneTime   ListingKind = "one_time"
	ListingRecurring ListingKind = "recurring"
)

func (k ListingKind) IsValid() bool {
	return k == ListingOneTime || k == ListingRecurring
}

func (k ListingKind) String() string {
	return string(k)
}

// Activity is a bookable offering. one_time listings carry a single event
// date; recurring listings carry a daily window and book against the
// availability ledger. Activities are soft-deleted via AvailabilityStatus,
// never removed, because bookings keep referencing them.
type Activity struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ProviderID  uuid.UUID   `gorm:"type:uuid;index;not null" json:"provider_id"`
	Name        string      `gorm:"not null;size:255" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Location    string      `gorm:"type:text" json:"location"`
	Price       float64     `gorm:"not null;check:price >= 0" json:"price"`
	Capacity    int         `gorm:"not null;check:capacity > 0" json:"capacity"`
	ListingKind ListingKind `gorm:"type:varchar(20);not null;check:listing_kind IN ('one_time', 'recurring')" json:"listing_kind"`

	// Scheduling window; FromTime/ToTime for recurring, EventDate for one_time
	FromTime  string     `gorm:"size:10" json:"from_time,omitempty"`
	ToTime    string     `gorm:"size:10" json:"to_time,omitempty"`
	EventDate *time.Time `gorm:"type:date" json:"event_date,omitempty"`

	AvailabilityStatus bool `gorm:"default:true" json:"availability_status"`
	IsTrending         bool `gorm:"default:false" json:"is_trending"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// IsActive reports whether the activity can still take bookings.
func (a *Activity) IsActive() bool {
	return a.AvailabilityStatus
}

// IsExpired reports whether a one_time listing's date has passed.
func (a *Activity) IsExpired(now time.Time) bool {
	if a.ListingKind != ListingOneTime || a.EventDate == nil {
		return false
	}
	return a.EventDate.Before(now.Truncate(24 * time.Hour))
}
