package activities

import "time"

type ActivityResponse struct {
	ID                 string     `json:"id"`
	ProviderID         string     `json:"provider_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Location           string     `json:"location"`
	Price              float64    `json:"price"`
	Capacity           int        `json:"capacity"`
	ListingKind        string     `json:"listing_kind"`
	FromTime           string     `json:"from_time,omitempty"`
	ToTime             string     `json:"to_time,omitempty"`
	EventDate          *time.Time `json:"event_date,omitempty"`
	AvailabilityStatus bool       `json:"availability_status"`
	IsTrending         bool       `json:"is_trending"`
	CreatedAt          time.Time  `json:"created_at"`
}

func toResponse(a *Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:                 a.ID.String(),
		ProviderID:         a.ProviderID.String(),
		Name:               a.Name,
		Description:        a.Description,
		Location:           a.Location,
		Price:              a.Price,
		Capacity:           a.Capacity,
		ListingKind:        a.ListingKind.String(),
		FromTime:           a.FromTime,
		ToTime:             a.ToTime,
		EventDate:          a.EventDate,
		AvailabilityStatus: a.AvailabilityStatus,
		IsTrending:         a.IsTrending,
		CreatedAt:          a.CreatedAt,
	}
}
