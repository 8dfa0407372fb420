package activities

import (
	"context"

	"adventura/internal/bookings"

	"github.com/google/uuid"
)

// BookingCatalogAdapter implements the bookings ActivityCatalog interface
// using the activities service. This adapter prevents import cycles while
// allowing the reservation service to read catalog records.
type BookingCatalogAdapter struct {
	service Service
}

// NewBookingCatalogAdapter creates a new booking catalog adapter
func NewBookingCatalogAdapter(service Service) *BookingCatalogAdapter {
	return &BookingCatalogAdapter{
		service: service,
	}
}

// GetActivityForBooking projects a catalog record into the slice the
// reservation flow needs.
func (bca *BookingCatalogAdapter) GetActivityForBooking(ctx context.Context, id uuid.UUID) (*bookings.ActivityInfo, error) {
	activity, err := bca.service.GetActivityRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	return &bookings.ActivityInfo{
		ID:         activity.ID,
		ProviderID: activity.ProviderID,
		Price:      activity.Price,
		Capacity:   activity.Capacity,
		Recurring:  activity.ListingKind == ListingRecurring,
		Active:     activity.IsActive(),
	}, nil
}
