package bookings

import "time"

// BookingResponse represents a booking in API responses.
type BookingResponse struct {
	ID                     string     `json:"id"`
	ActivityID             string     `json:"activity_id"`
	ClientID               string     `json:"client_id,omitempty"`
	BookedByProviderUserID string     `json:"booked_by_provider_user_id,omitempty"`
	BookingDate            string     `json:"booking_date"`
	Slot                   string     `json:"slot,omitempty"`
	PartySize              int        `json:"party_size"`
	TotalPrice             float64    `json:"total_price"`
	Status                 string     `json:"status"`
	CancellationReason     string     `json:"cancellation_reason,omitempty"`
	CancelledAt            *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

// AvailabilityCheckResponse answers a check-availability query.
type AvailabilityCheckResponse struct {
	ActivityID     string `json:"activity_id"`
	Date           string `json:"date"`
	Slot           string `json:"slot,omitempty"`
	Available      bool   `json:"available"`
	SeatsRemaining int    `json:"seats_remaining"`
}

// BookingListResponse wraps a paginated list of bookings.
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

func toResponse(b *Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 b.ID.String(),
		ActivityID:         b.ActivityID.String(),
		BookingDate:        b.BookingDate,
		Slot:               b.Slot,
		PartySize:          b.PartySize,
		TotalPrice:         b.TotalPrice,
		Status:             b.Status.String(),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
	}
	if b.ClientID != nil {
		resp.ClientID = b.ClientID.String()
	}
	if b.BookedByProviderUserID != nil {
		resp.BookedByProviderUserID = b.BookedByProviderUserID.String()
	}
	return resp
}

func toResponseList(bookings []Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, toResponse(&bookings[i]))
	}
	return responses
}
