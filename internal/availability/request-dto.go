package availability

type CreateSlotsRequest struct {
	ActivityID string   `json:"activity_id" binding:"required,uuid"`
	Date       string   `json:"date" binding:"required,bookingdate"`
	Slots      []string `json:"slots" binding:"required,min=1,dive,slotlabel"`
	Seats      int      `json:"seats" binding:"required,min=1"`
}

type SlotListQuery struct {
	ActivityID string `form:"activity_id" binding:"required,uuid"`
	Date       string `form:"date" binding:"omitempty,bookingdate"`
}
