package models

import "time"

// Notification types emitted by the booking engine.
const (
	NotifBookingCreated   = "booking_created"
	NotifBookingConfirmed = "booking_confirmed"
	NotifBookingCancelled = "booking_cancelled"
	NotifAgentAssigned    = "agent_assigned"
	NotifCheckInReminder  = "checkin_reminder"
)

type Notification struct {
	ID        string            `bson:"id" json:"id"`
	UserID    string            `bson:"user_id" json:"userId"`
	Type      string            `bson:"type" json:"type"`
	Title     string            `bson:"title" json:"title"`
	Message   string            `bson:"message" json:"message"`
	Data      map[string]string `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool              `bson:"read" json:"read"`
	CreatedAt time.Time         `bson:"created_at" json:"createdAt"`
}
