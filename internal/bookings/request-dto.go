package bookings

// CreateBookingRequest represents a reservation request. PartySize defaults
// to 1 when omitted; Slot is required for recurring activities only.
type CreateBookingRequest struct {
	ActivityID             string  `json:"activity_id" binding:"required,uuid"`
	ClientID               string  `json:"client_id" binding:"omitempty,uuid"`
	BookedByProviderUserID string  `json:"booked_by_provider_user_id" binding:"omitempty,uuid"`
	BookingDate            string  `json:"booking_date" binding:"required,bookingdate"`
	Slot                   string  `json:"slot" binding:"omitempty,slotlabel"`
	PartySize              *int    `json:"party_size" binding:"omitempty"`
	TotalPrice             float64 `json:"total_price" binding:"required,gt=0"`
}

// CancelBookingRequest carries the optional cancellation reason.
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"omitempty,max=500"`
}

// UpdateStatusRequest is the admin status-transition request.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

// CheckAvailabilityQuery asks whether a party fits a slot without reserving.
type CheckAvailabilityQuery struct {
	ActivityID string `form:"activity_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"required,bookingdate"`
	Slot       string `form:"slot" binding:"omitempty,slotlabel"`
	PartySize  int    `form:"party_size" binding:"omitempty,min=1"`
}

// BookingListQuery represents query parameters for booking lists.
type BookingListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}
