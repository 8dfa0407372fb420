package activities

import "time"

type CreateActivityRequest struct {
	ProviderID  string     `json:"provider_id" binding:"required,uuid"`
	Name        string     `json:"name" binding:"required,min=3,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Location    string     `json:"location" binding:"max=500"`
	Price       float64    `json:"price" binding:"required,min=0"`
	Capacity    int        `json:"capacity" binding:"required,min=1,max=10000"`
	ListingKind string     `json:"listing_kind" binding:"required,oneof=one_time recurring"`
	FromTime    string     `json:"from_time" binding:"omitempty,slotlabel"`
	ToTime      string     `json:"to_time" binding:"omitempty,slotlabel"`
	EventDate   *time.Time `json:"event_date"`
}

type UpdateActivityRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	Location    *string  `json:"location" binding:"omitempty,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	FromTime    *string  `json:"from_time" binding:"omitempty,slotlabel"`
	ToTime      *string  `json:"to_time" binding:"omitempty,slotlabel"`
}

type ActivityListQuery struct {
	Page        int    `form:"page" binding:"omitempty,min=1"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search      string `form:"search"`
	ListingKind string `form:"listing_kind" binding:"omitempty,oneof=one_time recurring"`
	Trending    bool   `form:"trending"`
	IncludeAll  bool   `form:"include_all"` // include deactivated listings (admin views)
}
