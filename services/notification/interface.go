package notification

import (
	"context"

	"wanderluxe/models"
)

// NotificationService delivers in-app notifications. Booking transitions
// treat every call as fire-and-forget: a delivery failure must never fail
// the transition that triggered it.
type NotificationService interface {
	Notify(ctx context.Context, userID, notifType, title, message string, data map[string]string) error
	ListForUser(ctx context.Context, userID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// EmailSender is the outbound-email seam. Delivery mechanics live outside
// this service; the default implementation only logs.
type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, b *models.Booking) error
}
