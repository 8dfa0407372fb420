package availability

type OpenSlotsResponse struct {
	ActivityID     string     `json:"activity_id"`
	Date           string     `json:"date"`
	AvailableSlots []SlotInfo `json:"available_slots"`
}

type OpenDatesResponse struct {
	ActivityID     string   `json:"activity_id"`
	AvailableDates []string `json:"available_dates"`
}
