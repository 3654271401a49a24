package booking

import (
	"context"

	"wanderluxe/models"
)

// BookingService drives the booking lifecycle. Confirm, Cancel, Complete and
// Finalize return false (with a nil error) when the booking is already in a
// state where the transition does not apply; callers must check the flag to
// detect the no-op.
type BookingService interface {
	Create(ctx context.Context, user *models.User, req *models.BookingRequest) (*models.BookingResult, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, id string, upd *models.BookingUpdate) (*models.Booking, error)
	Confirm(ctx context.Context, id, paymentReference string) (*models.Booking, bool, error)
	Cancel(ctx context.Context, id, reason string) (*models.Booking, bool, error)
	Complete(ctx context.Context, id string) (*models.Booking, bool, error)
	Finalize(ctx context.Context, id, notes string) (*models.Booking, bool, error)
}
