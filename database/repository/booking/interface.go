package bookingRepo

import (
	"context"
	"time"

	"wanderluxe/models"
)

// BookingRepository persists booking records. Bookings are never deleted;
// cancellation is a status change.
type BookingRepository interface {
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByReference(ctx context.Context, ref string) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)

	// CountPendingByAgent counts an agent's PENDING bookings of type AGENT,
	// the load signal used by assignment balancing.
	CountPendingByAgent(ctx context.Context, agentID string) (int64, error)

	// BookedDestinationIDs returns the ids of destinations the user has ever
	// booked, used as the recommendation exclusion list.
	BookedDestinationIDs(ctx context.Context, userID string) (map[string]bool, error)

	// ListConfirmedCheckedOutBefore returns CONFIRMED bookings whose stay
	// ended before the cutoff, candidates for automatic completion.
	ListConfirmedCheckedOutBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error)

	// ListConfirmedCheckingInBetween returns CONFIRMED bookings starting in
	// the window, candidates for check-in reminders.
	ListConfirmedCheckingInBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)
}
