package booking

import (
	"context"
	"fmt"

	bookingRepo "wanderluxe/database/repository/booking"
	"wanderluxe/models"
	"wanderluxe/services/notification"

	"go.uber.org/zap"
)

// AgentAssignmentBalancer picks the least-loaded active agent for an agent
// booking. Load is the agent's count of PENDING agent-type bookings; ties go
// to the earliest candidate in the list, so the result is deterministic for
// a given candidate order.
type AgentAssignmentBalancer struct {
	Bookings bookingRepo.BookingRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

// Assign selects an agent for the booking and sets booking.AgentID, leaving
// the status untouched. It returns the selected agent, or nil when there is
// nothing to do: the booking already has an agent, is not an agent booking,
// or no candidates are available. An unassigned agent booking is not an
// error; it can be assigned later by a manual action.
func (b *AgentAssignmentBalancer) Assign(ctx context.Context, booking *models.Booking, candidates []models.User) (*models.User, error) {
	if booking.Type != models.BookingAgent {
		return nil, nil
	}
	if booking.AgentID != "" {
		for i := range candidates {
			if candidates[i].ID == booking.AgentID {
				return &candidates[i], nil
			}
		}
		return nil, nil
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	best := 0
	bestCount := b.pendingCount(ctx, candidates[0].ID)
	for i := 1; i < len(candidates); i++ {
		count := b.pendingCount(ctx, candidates[i].ID)
		if count < bestCount {
			best = i
			bestCount = count
		}
	}
	selected := &candidates[best]

	booking.AgentID = selected.ID
	if err := b.Bookings.Update(ctx, booking); err != nil {
		booking.AgentID = ""
		return nil, fmt.Errorf("failed to persist agent assignment: %w", err)
	}

	bestEffort(b.Logger, "agent assigned notification", func() error {
		return b.Notifier.Notify(ctx, selected.ID, models.NotifAgentAssigned,
			"New booking assigned",
			fmt.Sprintf("Booking %s has been assigned to you.", booking.Reference),
			map[string]string{"bookingId": booking.ID, "reference": booking.Reference},
		)
	})

	b.Logger.Info("agent assigned",
		zap.String("bookingId", booking.ID),
		zap.String("agentId", selected.ID),
		zap.Int64("pendingLoad", bestCount),
	)
	return selected, nil
}

// pendingCount treats a counting failure for one agent as zero load instead
// of aborting the whole assignment.
func (b *AgentAssignmentBalancer) pendingCount(ctx context.Context, agentID string) int64 {
	count, err := b.Bookings.CountPendingByAgent(ctx, agentID)
	if err != nil {
		b.Logger.Warn("failed to count pending bookings, treating as zero",
			zap.String("agentId", agentID),
			zap.Error(err),
		)
		return 0
	}
	return count
}
