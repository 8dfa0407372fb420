package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeBookingReceived  NotificationType = "BOOKING_RECEIVED"
	NotificationTypeBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationTypeBookingCancelled NotificationType = "BOOKING_CANCELLED"
)

// Notification is the message published to the notification topic. Delivery
// (push, email) happens downstream; this service only emits.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	Type        NotificationType `json:"type"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewNotification builds a notification with a fresh ID and timestamp.
func NewNotification(recipientID uuid.UUID, title, description, icon string) *Notification {
	return &Notification{
		ID:          uuid.New(),
		Type:        typeForTitle(title),
		RecipientID: recipientID,
		Title:       title,
		Description: description,
		Icon:        icon,
		CreatedAt:   time.Now(),
	}
}

// ToJSON serializes the notification for the wire.
func (n *Notification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all messages for one recipient to the same
// partition so a consumer sees them in order.
func (n *Notification) GetPartitionKey() string {
	return n.RecipientID.String()
}

func typeForTitle(title string) NotificationType {
	switch title {
	case "Booking Confirmed":
		return NotificationTypeBookingConfirmed
	case "Booking Cancelled":
		return NotificationTypeBookingCancelled
	}
	return NotificationTypeBookingReceived
}
